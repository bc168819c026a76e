package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultFile is the task file used when nothing else is configured
const DefaultFile = "todos.json"

// localTimeLayout matches timestamps written without a zone, e.g. by Python's isoformat()
const localTimeLayout = "2006-01-02T15:04:05.999999999"

// taskFile is the on-disk layout. Pointer fields distinguish absent from zero.
type taskFile struct {
	Tasks  []taskRecord `json:"tasks"`
	NextID *int         `json:"next_id"`
}

type taskRecord struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	Details   *string `json:"details"`
	Status    *string `json:"status"`
	CreatedAt *string `json:"created_at"`
}

type savedFile struct {
	Tasks  []savedTask `json:"tasks"`
	NextID int         `json:"next_id"`
}

type savedTask struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Load reads a store from path.
// A missing file yields an empty store and no error. A file that cannot be
// read or parsed yields an empty store and an error wrapping
// ErrMalformedStorage, so callers can report it and carry on.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStore(), nil
		}
		return NewStore(), fmt.Errorf("%w: %v", ErrMalformedStorage, err)
	}

	store, err := decode(data)
	if err != nil {
		return NewStore(), fmt.Errorf("%w: %s: %v", ErrMalformedStorage, path, err)
	}
	return store, nil
}

func decode(data []byte) (*Store, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errors.New("top level is not an object")
	}
	if raw, ok := top["tasks"]; ok && string(bytes.TrimSpace(raw)) == "null" {
		return nil, errors.New("tasks is null")
	}

	var f taskFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	loadedAt := time.Now()
	store := NewStore()
	for i, rec := range f.Tasks {
		if rec.ID == nil {
			return nil, fmt.Errorf("task %d: missing id", i)
		}
		if rec.Name == nil {
			return nil, fmt.Errorf("task %d: missing name", i)
		}

		task := Task{
			ID:        *rec.ID,
			Name:      *rec.Name,
			Status:    StatusPending,
			CreatedAt: loadedAt,
		}
		if rec.Details != nil {
			task.Details = *rec.Details
		}
		if rec.Status != nil {
			task.Status = parseStatus(*rec.Status)
		}
		if rec.CreatedAt != nil {
			if ts, ok := parseTimestamp(*rec.CreatedAt); ok {
				task.CreatedAt = ts
			}
		}
		store.tasks = append(store.tasks, task)
	}

	// An absent counter falls back to 1 even when tasks exist.
	if f.NextID != nil {
		store.nextID = *f.NextID
	}
	return store, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, true
	}
	if ts, err := time.ParseInLocation(localTimeLayout, s, time.Local); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

// Encode returns the bytes Save writes for s
func Encode(s *Store) ([]byte, error) {
	out := savedFile{
		Tasks:  make([]savedTask, 0, len(s.tasks)),
		NextID: s.nextID,
	}
	for _, t := range s.tasks {
		out.Tasks = append(out.Tasks, savedTask{
			ID:        t.ID,
			Name:      t.Name,
			Details:   t.Details,
			Status:    t.Status,
			CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the full store to path, replacing any previous content.
// Errors wrap ErrStorageWrite.
func Save(path string, s *Store) error {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	// Replace the link target, not the link
	path = resolvePath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	// Write atomically via temp file
	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return nil
}

// resolvePath follows symlinks at path, including a dangling final link
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}
