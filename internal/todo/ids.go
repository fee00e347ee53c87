package todo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidIDPolicy = errors.New("todo: invalid id policy")

// IDSource hands out task identifiers. current is the collection length at
// the moment the task is created.
type IDSource interface {
	NextID(current int) int
}

// CounterIDs never reuses an identifier within a session.
type CounterIDs struct {
	next int
}

func (c *CounterIDs) NextID(int) int {
	id := c.next
	c.next++
	return id
}

// LengthIDs derives the identifier from the collection length. Deleting a
// task and adding another can produce a duplicate id.
type LengthIDs struct{}

func (LengthIDs) NextID(current int) int { return current }

type IDPolicy string

const (
	IDPolicyCounter IDPolicy = "counter"
	IDPolicyLength  IDPolicy = "length"
)

func ParseIDPolicy(raw string) (IDPolicy, error) {
	switch p := IDPolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case IDPolicyCounter, IDPolicyLength:
		return p, nil
	case "":
		return IDPolicyCounter, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidIDPolicy, raw)
	}
}

// Source builds a fresh IDSource for the policy.
func (p IDPolicy) Source() IDSource {
	if p == IDPolicyLength {
		return LengthIDs{}
	}
	return &CounterIDs{}
}
