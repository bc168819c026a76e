package tasks

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrMalformedStorage = errors.New("malformed task file")
	ErrStorageWrite     = errors.New("failed to write task file")
)

// NotFoundError is returned by Complete when no task has the given ID
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// Is lets errors.Is(err, ErrTaskNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}
