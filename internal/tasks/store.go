package tasks

import "time"

// Store is the in-memory task list and ID counter
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore creates an empty store whose first task gets ID 1
func NewStore() *Store {
	return &Store{
		tasks:  []Task{},
		nextID: 1,
	}
}

// Add appends a pending task and returns it with its assigned ID.
// The name is stored as given; validation is up to the caller.
func (s *Store) Add(name, details string) Task {
	task := Task{
		ID:        s.nextID,
		Name:      name,
		Details:   details,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, task)
	s.nextID++
	return task
}

// List returns a copy of all tasks in creation order
func (s *Store) List() []Task {
	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Complete marks a task as done and returns the updated task.
// Completing a task that is already done succeeds.
func (s *Store) Complete(id int) (Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = StatusDone
			return s.tasks[i], nil
		}
	}
	return Task{}, &NotFoundError{ID: id}
}

// NextID returns the ID the next Add will assign
func (s *Store) NextID() int {
	return s.nextID
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats returns task counts
func (s *Store) Stats() (total, done, pending int) {
	for _, t := range s.tasks {
		total++
		if t.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}
