package todo

import "fmt"

// Filter selects which tasks are displayed.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterNotStarted Filter = Filter(StatusNotStarted)
	FilterInProgress Filter = Filter(StatusInProgress)
	FilterDone       Filter = Filter(StatusDone)
)

var filterOrder = []Filter{FilterAll, FilterNotStarted, FilterInProgress, FilterDone}

// Filters lists every filter in selector order.
func Filters() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterNotStarted, FilterInProgress, FilterDone:
		return true
	default:
		return false
	}
}

func (f Filter) String() string { return string(f) }

func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	return Status(f).Label()
}

func (f Filter) Next() Filter {
	return filterOrder[(indexOf(filterOrder, f)+1)%len(filterOrder)]
}

func (f Filter) Prev() Filter {
	i := indexOf(filterOrder, f) - 1
	if i < 0 {
		i = len(filterOrder) - 1
	}
	return filterOrder[i]
}

// Match reports whether t belongs to the filtered view.
func (f Filter) Match(t Task) bool {
	if f == FilterAll {
		return true
	}
	return t.Status == Status(f)
}

func ParseFilter(raw string) (Filter, error) {
	if normalize(raw) == "all" {
		return FilterAll, nil
	}
	s, err := ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return Filter(s), nil
}

// Apply returns the tasks matching f in their original order. The input
// slice is never modified.
func Apply(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
