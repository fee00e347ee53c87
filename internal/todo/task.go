package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("todo: invalid task status")
	ErrInvalidFilter = errors.New("todo: invalid filter")
)

// Status is the progress category of a task.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var statusOrder = []Status{StatusNotStarted, StatusInProgress, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Label is the text shown in the status selector.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Next returns the following status, wrapping around after done.
func (s Status) Next() Status {
	return statusOrder[(indexOf(statusOrder, s)+1)%len(statusOrder)]
}

// Prev returns the preceding status, wrapping around before not-started.
func (s Status) Prev() Status {
	i := indexOf(statusOrder, s) - 1
	if i < 0 {
		i = len(statusOrder) - 1
	}
	return statusOrder[i]
}

// ParseStatus accepts the kebab-case names as well as the camelCase
// spellings (notStarted, inProgress).
func ParseStatus(raw string) (Status, error) {
	switch normalize(raw) {
	case "notstarted":
		return StatusNotStarted, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Task is a single todo entry.
type Task struct {
	ID        int
	Text      string
	Completed bool
	Status    Status
}

func normalize(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)
}

func indexOf[T comparable](items []T, target T) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return 0
}
