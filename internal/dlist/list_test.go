package dlist

import (
	"sync"
	"testing"
)

func TestPushBackOrdersElementsFIFO(t *testing.T) {
	l := New[string]()
	if l.Len() != 0 {
		t.Fatalf("new list len = %d, want 0", l.Len())
	}

	first := l.PushBack("buy-1")
	second := l.PushBack("buy-2")
	third := l.PushBack("buy-3")

	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	if l.Front() != first {
		t.Fatalf("front is not the first pushed element")
	}
	if l.Back() != third {
		t.Fatalf("back is not the last pushed element")
	}
	if first.Next() != second || second.Next() != third {
		t.Fatalf("forward chain broken")
	}
	if third.Prev() != second || second.Prev() != first {
		t.Fatalf("backward chain broken")
	}
	if first.Prev() != nil {
		t.Fatalf("head element should have no prev")
	}
	if third.Next() != nil {
		t.Fatalf("tail element should have no next")
	}
}

func TestRemoveFromMiddleRelinksNeighbours(t *testing.T) {
	l := New[int]()
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	v, err := l.Remove(b)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if v != 2 {
		t.Fatalf("removed value = %d, want 2", v)
	}
	if l.Len() != 2 {
		t.Fatalf("len after remove = %d, want 2", l.Len())
	}
	if a.Next() != c || c.Prev() != a {
		t.Fatalf("neighbours not relinked after removing the middle element")
	}
}

func TestRemoveHeadAndTailUpdatesListPointers(t *testing.T) {
	l := New[int]()
	a := l.PushBack(10)
	b := l.PushBack(20)
	c := l.PushBack(30)

	if _, err := l.Remove(a); err != nil {
		t.Fatalf("remove head: %v", err)
	}
	if l.Front() != b {
		t.Fatalf("front after removing head = %v, want b", l.Front())
	}

	if _, err := l.Remove(c); err != nil {
		t.Fatalf("remove tail: %v", err)
	}
	if l.Back() != b {
		t.Fatalf("back after removing tail = %v, want b", l.Back())
	}
	if l.Len() != 1 {
		t.Fatalf("len = %d, want 1", l.Len())
	}
}

func TestRemoveRejectsNilAndForeignElements(t *testing.T) {
	l1 := New[int]()
	l2 := New[int]()
	e := l1.PushBack(1)
	foreign := l2.PushBack(2)

	if _, err := l1.Remove(nil); err != ErrElementNil {
		t.Fatalf("remove(nil): got %v, want ErrElementNil", err)
	}
	if _, err := l1.Remove(foreign); err != ErrElementNotInList {
		t.Fatalf("remove(foreign): got %v, want ErrElementNotInList", err)
	}

	if _, err := l1.Remove(e); err != nil {
		t.Fatalf("remove(e): %v", err)
	}
	if _, err := l1.Remove(e); err != ErrElementNotInList {
		t.Fatalf("double remove: got %v, want ErrElementNotInList", err)
	}
}

func TestCleanEmptiesListAndReleasesToPool(t *testing.T) {
	var created int
	pool := &sync.Pool{
		New: func() any {
			created++
			return &Element[int]{}
		},
	}

	l := NewPooled[int](pool)
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	l.Clean()

	if l.Len() != 0 {
		t.Fatalf("len after clean = %d, want 0", l.Len())
	}
	if l.Front() != nil || l.Back() != nil {
		t.Fatalf("front/back after clean should be nil")
	}

	before := created
	l.PushBack(4)
	l.PushBack(5)
	if created != before {
		t.Fatalf("expected pooled elements to be reused, pool.New ran %d more times", created-before)
	}
}

func TestRangeVisitsHeadToTailAndSupportsSelfRemoval(t *testing.T) {
	l := New[int]()
	for _, v := range []int{2, 4, 5, 7, 8, 9, 10} {
		l.PushBack(v)
	}

	var visited, odds []int
	l.Range(func(v int) bool {
		visited = append(visited, v)
		return false
	})
	want := []int{2, 4, 5, 7, 8, 9, 10}
	if !equalInts(visited, want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}

	// Removing the element currently being visited must not disturb the
	// walk over its neighbours.
	var toRemove []*Element[int]
	l.Range(func(v int) bool {
		if v%2 != 0 {
			odds = append(odds, v)
		}
		return false
	})
	for e := l.Front(); e != nil; e = e.Next() {
		if e.Value%2 != 0 {
			toRemove = append(toRemove, e)
		}
	}
	for _, e := range toRemove {
		if _, err := l.Remove(e); err != nil {
			t.Fatalf("remove during cleanup: %v", err)
		}
	}
	if want := []int{5, 7, 9}; !equalInts(odds, want) {
		t.Fatalf("odds = %v, want %v", odds, want)
	}

	var remaining []int
	l.Range(func(v int) bool {
		remaining = append(remaining, v)
		return false
	})
	if want := []int{2, 4, 8, 10}; !equalInts(remaining, want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
}

func TestRangeStopsEarly(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		l.PushBack(v)
	}

	var seen []int
	l.Range(func(v int) bool {
		seen = append(seen, v)
		return v == 3
	})
	if want := []int{1, 2, 3}; !equalInts(seen, want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
