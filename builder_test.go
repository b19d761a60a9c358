package ordered

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderBuildsSortedSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	b := NewBuilder[int]()
	if err := b.Add(3, 1, 4, 1, 5); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := b.AddSeq(slices.Values([]int{9, 2, 6})); err != nil {
		t.Fatalf("AddSeq failed: %v", err)
	}
	s := b.Set()
	if err := s.Check(); err != nil {
		t.Fatalf("built set violates tree invariants: %v", err)
	}
	got := slices.Collect(s.All())
	want := []int{1, 2, 3, 4, 5, 6, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("element mismatch: got=%v want=%v", got, want)
	}
}

func TestBuilderSealsAfterSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	b := NewBuilder[int]()
	if err := b.Add(1, 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	first := b.Set()
	if err := b.Add(3); !errors.Is(err, ErrSetSealed) {
		t.Fatalf("expected ErrSetSealed, got %v", err)
	}
	if err := b.AddSeq(slices.Values([]int{3})); !errors.Is(err, ErrSetSealed) {
		t.Fatalf("expected ErrSetSealed, got %v", err)
	}
	second := b.Set()
	if !first.Equal(second) {
		t.Fatalf("repeated Set should return the same set")
	}
}

func TestBuilderLatestDuplicateWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	type account struct {
		id   int
		name string
	}
	b, err := NewBuilderOf(func(a, b account) int { return cmp.Compare(a.id, b.id) })
	if err != nil {
		t.Fatalf("NewBuilderOf failed: %v", err)
	}
	if err := b.Add(account{1, "first"}, account{2, "two"}, account{1, "second"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	s := b.Set()
	if s.Len() != 2 {
		t.Fatalf("duplicate ids should collapse: len=%d", s.Len())
	}
	var names []string
	for a := range s.All() {
		names = append(names, a.name)
	}
	if !slices.Equal(names, []string{"second", "two"}) {
		t.Fatalf("the most recently staged duplicate should win: %v", names)
	}
}

func TestBuilderResetReopens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	b := NewBuilder[int]()
	if err := b.Add(1, 2, 3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	_ = b.Set()
	b.Reset()
	if err := b.Add(7); err != nil {
		t.Fatalf("Add after Reset failed: %v", err)
	}
	s := b.Set()
	if got := slices.Collect(s.All()); !slices.Equal(got, []int{7}) {
		t.Fatalf("Reset should discard staged elements: %v", got)
	}
}

func TestBuilderWithoutElementsYieldsUsableSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	s := NewBuilder[int]().Set()
	if !s.IsEmpty() {
		t.Fatalf("expected an empty set")
	}
	s = s.Insert(1)
	if !s.Contains(1) {
		t.Fatalf("the built empty set should accept inserts")
	}
}

func TestBuilderRejectsIllegalCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	if _, err := NewBuilderOf[int](nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	var b *Builder[int]
	if err := b.Add(1); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("Add on a nil builder should fail, got %v", err)
	}
	fresh := NewBuilder[int]()
	if err := fresh.AddSeq(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("AddSeq(nil) should fail, got %v", err)
	}
}
