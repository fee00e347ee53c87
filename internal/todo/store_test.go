package todo

import (
	"errors"
	"testing"
)

func seed(t *testing.T, s *Store, texts ...string) []Task {
	t.Helper()
	out := make([]Task, 0, len(texts))
	for _, text := range texts {
		out = append(out, s.Add(text))
	}
	return out
}

func TestAddPrependsNotStartedTask(t *testing.T) {
	s := NewStore()
	s.SetInput("buy milk")
	first := s.Submit()
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if first.Status != StatusNotStarted || first.Completed {
		t.Fatalf("unexpected new task: %+v", first)
	}
	if s.Input() != "" {
		t.Fatalf("input buffer not cleared: %q", s.Input())
	}

	second := s.Add("walk dog")
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	tasks := s.Tasks()
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatalf("new task not at front: %+v", tasks)
	}
}

func TestEditChangesOnlyTarget(t *testing.T) {
	s := NewStore()
	tasks := seed(t, s, "a", "b", "c")
	before := s.Tasks()

	if !s.Edit(tasks[1].ID, "bee") {
		t.Fatal("edit reported no match")
	}
	after := s.Tasks()
	for i := range after {
		want := before[i]
		if want.ID == tasks[1].ID {
			want.Text = "bee"
		}
		if after[i] != want {
			t.Fatalf("task %d = %+v, want %+v", i, after[i], want)
		}
	}
	if before[1].Text != "b" {
		t.Fatalf("previous snapshot mutated: %+v", before[1])
	}
}

func TestToggleCheckedFlipsOnlyTarget(t *testing.T) {
	s := NewStore()
	tasks := seed(t, s, "a", "b")

	s.ToggleChecked(tasks[0].ID)
	got, _ := s.Get(tasks[0].ID)
	other, _ := s.Get(tasks[1].ID)
	if !got.Completed || other.Completed {
		t.Fatalf("toggle flipped wrong task: %+v %+v", got, other)
	}

	s.ToggleChecked(tasks[0].ID)
	got, _ = s.Get(tasks[0].ID)
	if got.Completed {
		t.Fatal("second toggle did not flip back")
	}
}

func TestSetStatus(t *testing.T) {
	s := NewStore()
	tasks := seed(t, s, "a", "b")

	if !s.SetStatus(tasks[1].ID, StatusInProgress) {
		t.Fatal("set status reported no match")
	}
	got, _ := s.Get(tasks[1].ID)
	if got.Status != StatusInProgress {
		t.Fatalf("status = %s", got.Status)
	}
	if s.SetStatus(tasks[1].ID, Status("blocked")) {
		t.Fatal("invalid status accepted")
	}
	other, _ := s.Get(tasks[0].ID)
	if other.Status != StatusNotStarted {
		t.Fatalf("untouched task changed: %+v", other)
	}
}

func TestRemoveDropsExactlyOne(t *testing.T) {
	s := NewStore()
	tasks := seed(t, s, "a", "b", "c")

	if !s.Remove(tasks[1].ID) {
		t.Fatal("remove reported no match")
	}
	got := s.Tasks()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != tasks[2] || got[1] != tasks[0] {
		t.Fatalf("remaining tasks changed: %+v", got)
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	seed(t, s, "a")
	before := s.Tasks()

	if s.Edit(99, "x") || s.ToggleChecked(99) || s.SetStatus(99, StatusDone) || s.Remove(99) {
		t.Fatal("unknown id reported a match")
	}
	after := s.Tasks()
	if len(after) != 1 || after[0] != before[0] {
		t.Fatalf("state changed: %+v", after)
	}
}

func TestVisibleFollowsFilter(t *testing.T) {
	s := NewStore(WithFilter(FilterAll))
	tasks := seed(t, s, "a", "b", "c", "d")
	s.SetStatus(tasks[0].ID, StatusInProgress)
	s.SetStatus(tasks[1].ID, StatusDone)
	s.SetStatus(tasks[3].ID, StatusDone)

	cases := []struct {
		filter Filter
		want   []int
	}{
		{FilterAll, []int{tasks[3].ID, tasks[2].ID, tasks[1].ID, tasks[0].ID}},
		{FilterNotStarted, []int{tasks[2].ID}},
		{FilterInProgress, []int{tasks[0].ID}},
		{FilterDone, []int{tasks[3].ID, tasks[1].ID}},
	}
	for _, tc := range cases {
		s.SetFilter(tc.filter)
		got := s.Visible()
		if len(got) != len(tc.want) {
			t.Fatalf("filter %s: got %d tasks, want %d", tc.filter, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("filter %s: task %d id = %d, want %d", tc.filter, i, got[i].ID, id)
			}
		}
	}

	// the view tracks source changes without re-selecting the filter
	s.SetFilter(FilterNotStarted)
	s.SetStatus(tasks[2].ID, StatusDone)
	if n := len(s.Visible()); n != 0 {
		t.Fatalf("visible after status change = %d, want 0", n)
	}
}

func TestDefaultFilterIsNotStarted(t *testing.T) {
	s := NewStore()
	if s.Filter() != FilterNotStarted {
		t.Fatalf("default filter = %s", s.Filter())
	}
	if s.SetFilter(Filter("archived")) {
		t.Fatal("invalid filter accepted")
	}
}

func TestCounterIDsAreNotReused(t *testing.T) {
	s := NewStore()
	tasks := seed(t, s, "a", "b")
	s.Remove(tasks[0].ID)
	c := s.Add("c")
	for _, existing := range s.Tasks()[1:] {
		if existing.ID == c.ID {
			t.Fatalf("id %d reused", c.ID)
		}
	}
	if c.ID != 2 {
		t.Fatalf("counter id = %d, want 2", c.ID)
	}
}

func TestLengthIDsReproduceReuse(t *testing.T) {
	s := NewStore(WithIDSource(LengthIDs{}))
	tasks := seed(t, s, "a", "b")
	if tasks[0].ID != 0 || tasks[1].ID != 1 {
		t.Fatalf("length ids = %d,%d", tasks[0].ID, tasks[1].ID)
	}
	s.Remove(tasks[0].ID)
	c := s.Add("c")
	if c.ID != tasks[1].ID {
		t.Fatalf("expected reused id %d, got %d", tasks[1].ID, c.ID)
	}

	// both tasks share the id, so updates reach both of them
	s.ToggleChecked(c.ID)
	for _, task := range s.Tasks() {
		if !task.Completed {
			t.Fatalf("task %+v not toggled", task)
		}
	}
	s.Remove(c.ID)
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestParseIDPolicy(t *testing.T) {
	for in, want := range map[string]IDPolicy{"": IDPolicyCounter, "Counter": IDPolicyCounter, "length": IDPolicyLength} {
		got, err := ParseIDPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseIDPolicy(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseIDPolicy("uuid"); !errors.Is(err, ErrInvalidIDPolicy) {
		t.Fatalf("expected ErrInvalidIDPolicy, got %v", err)
	}
	if _, ok := IDPolicyLength.Source().(LengthIDs); !ok {
		t.Fatal("length policy did not build LengthIDs")
	}
}
