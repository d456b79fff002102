// Package dlist implements a generic intrusive doubly linked list.
//
// It backs the FIFO order queue of a price level: O(1) enqueue at the
// tail, O(1) peek at the head, and O(1) removal of an arbitrary element
// given its handle, without reshuffling queue position of unrelated
// orders.
//
// Unlike a sentinel/circular implementation, List tracks head and tail
// pointers directly and leaves an element's next/prev nil at either end
// — the same shape a price level's own order chain uses when it isn't
// routed through a reusable container (UmarFarooq-MP-Loki's PriceLevel
// links Order.next/Order.prev by hand). A zero List is ready to use; an
// empty list is simply head == tail == nil, so there is nothing to
// lazily initialize.
package dlist

import "sync"

// List represents a doubly linked list. Only the operations a FIFO
// order queue needs are exposed: push at the tail, peek the head/tail,
// and remove an arbitrary element by its own handle. A zero value is an
// empty list ready to use.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release elements
	head *Element[T]
	tail *Element[T]
	len  int
}

// New creates a new empty List.
func New[T any]() *List[T] {
	return NewPooled[T](nil)
}

// NewPooled creates a new List backed by the given pool for element
// allocation/release.
func NewPooled[T any](pool *sync.Pool) *List[T] {
	return &List[T]{pool: pool}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first (head) element, or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the last (tail) element, or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

// PushBack appends a new element holding v to the tail of the list and
// returns it.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := l.newElement(v)
	if l.tail == nil {
		l.head = e
	} else {
		e.prev = l.tail
		l.tail.next = e
	}
	l.tail = e
	e.list = l
	l.len++
	return e
}

func (l *List[T]) newElement(v T) *Element[T] {
	var e *Element[T]
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		*e = Element[T]{Value: v}
	} else {
		e = &Element[T]{Value: v}
	}
	return e
}

// Remove unlinks e from the list. e must be a handle previously
// returned by PushBack on this same list.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		err = ErrElementNil
		return
	}
	if e.list != l {
		err = ErrElementNotInList
		return
	}
	v = e.Value
	l.unlink(e)
	return
}

func (l *List[T]) unlink(e *Element[T]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	l.len--

	e.next, e.prev, e.list = nil, nil, nil
	if l.pool != nil {
		l.pool.Put(e)
	}
}

// Clean removes every element, releasing them to the pool if one is
// configured.
func (l *List[T]) Clean() {
	if l.pool != nil {
		for e := l.head; e != nil; {
			next := e.next
			e.next, e.prev, e.list = nil, nil, nil
			l.pool.Put(e)
			e = next
		}
	}
	l.head, l.tail = nil, nil
	l.len = 0
}

// Range visits every element head-to-tail until f returns true.
// Removing the element currently passed to f is safe mid-walk; removing
// any other element while ranging is not.
func (l *List[T]) Range(f func(v T) bool) {
	for e := l.head; e != nil; {
		next := e.next
		if f(e.Value) {
			return
		}
		e = next
	}
}
