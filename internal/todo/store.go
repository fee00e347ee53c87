// Package todo holds the in-memory task list state.
//
// Every mutation builds a new slice; slices returned by Tasks and Visible
// are never changed afterwards. Operations on ids that match nothing are
// no-ops.
package todo

// Store is the state container for one editing session. It is not safe for
// concurrent use.
type Store struct {
	input  string
	tasks  []Task
	filter Filter
	ids    IDSource
}

type Option func(*Store)

// WithIDSource replaces the default counter.
func WithIDSource(src IDSource) Option {
	return func(s *Store) {
		if src != nil {
			s.ids = src
		}
	}
}

// WithFilter sets the initial filter. Invalid values are ignored.
func WithFilter(f Filter) Option {
	return func(s *Store) {
		if f.IsValid() {
			s.filter = f
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		filter: FilterNotStarted,
		ids:    &CounterIDs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Input() string { return s.input }

func (s *Store) SetInput(text string) { s.input = text }

// Add puts a new not-started task at the front of the list and clears the
// input buffer.
func (s *Store) Add(text string) Task {
	t := Task{
		ID:     s.ids.NextID(len(s.tasks)),
		Text:   text,
		Status: StatusNotStarted,
	}
	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, t)
	next = append(next, s.tasks...)
	s.tasks = next
	s.input = ""
	return t
}

// Submit adds the current input buffer as a task.
func (s *Store) Submit() Task {
	return s.Add(s.input)
}

func (s *Store) Edit(id int, text string) bool {
	return s.update(id, func(t Task) Task {
		t.Text = text
		return t
	})
}

func (s *Store) ToggleChecked(id int) bool {
	return s.update(id, func(t Task) Task {
		t.Completed = !t.Completed
		return t
	})
}

// SetStatus ignores values outside the status enum.
func (s *Store) SetStatus(id int, status Status) bool {
	if !status.IsValid() {
		return false
	}
	return s.update(id, func(t Task) Task {
		t.Status = status
		return t
	})
}

// Remove drops every task carrying id and reports whether any was found.
func (s *Store) Remove(id int) bool {
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(s.tasks) {
		return false
	}
	s.tasks = next
	return true
}

func (s *Store) Filter() Filter { return s.filter }

// SetFilter ignores values outside the filter enum.
func (s *Store) SetFilter(f Filter) bool {
	if !f.IsValid() {
		return false
	}
	s.filter = f
	return true
}

// Tasks returns the full collection, newest first.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Visible is the filtered view for the active filter.
func (s *Store) Visible() []Task {
	return Apply(s.tasks, s.filter)
}

func (s *Store) Get(id int) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) update(id int, fn func(Task) Task) bool {
	found := false
	next := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID == id {
			t = fn(t)
			found = true
		}
		next[i] = t
	}
	if found {
		s.tasks = next
	}
	return found
}
