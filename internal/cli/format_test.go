package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jyang234/todo/internal/tasks"
)

func TestTruncateDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "2%", "2%"},
		{"exactly thirty", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"thirty one", strings.Repeat("a", 31), strings.Repeat("a", 27) + "..."},
		{"multibyte", strings.Repeat("é", 31), strings.Repeat("é", 27) + "..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncateDetails(tt.in); got != tt.want {
				t.Errorf("truncateDetails(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteTaskTableEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeTaskTable(&buf, nil)
	if buf.String() != "No tasks found.\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestWriteTaskTablePadsByCharacter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeTaskTable(&buf, []tasks.Task{
		{ID: 7, Name: "Café", Details: "日本", Status: tasks.StatusDone, CreatedAt: time.Now()},
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}

	want := "7    Café                 日本                             ✓ Done    "
	if lines[2] != want {
		t.Errorf("Unexpected row:\ngot:  %q\nwant: %q", lines[2], want)
	}
}
