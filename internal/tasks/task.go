package tasks

import "time"

// Status is the lifecycle state of a task
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// parseStatus maps a stored status to a known value; anything unrecognised is pending
func parseStatus(s string) Status {
	if Status(s) == StatusDone {
		return StatusDone
	}
	return StatusPending
}

// Task is a single tracked item
type Task struct {
	ID        int
	Name      string
	Details   string
	Status    Status
	CreatedAt time.Time
}

// IsDone reports whether the task has been completed
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}
