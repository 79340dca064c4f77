package store

import (
	"errors"
	"fmt"
	"strings"
)

// Entity names used in error wrapping.
const (
	EntityStudent    = "student"
	EntityCourse     = "course"
	EntityAssignment = "assignment"
	EntitySession    = "study session"
)

// OpError wraps a failed store operation with its resource and ID.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}

// ErrNotFound lets callers branch with errors.Is without caring which
// adapter produced the miss.
var ErrNotFound = errors.New("record not found")

// NotFoundError reports a lookup miss together with the identifiers the
// store currently knows, which makes identifier-type mismatches at the
// boundary obvious in the message.
type NotFoundError struct {
	Resource string
	ID       int64
	Known    []int64
}

func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("%s %d not found (store is empty)", e.Resource, e.ID)
	}
	ids := make([]string, len(e.Known))
	for i, id := range e.Known {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%s %d not found (known ids: %s)", e.Resource, e.ID, strings.Join(ids, ", "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(resource string, id int64, known []int64) error {
	return &NotFoundError{Resource: resource, ID: id, Known: known}
}
