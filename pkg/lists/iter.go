package lists

import "iter"

// Cursor walks the elements of a list front to back.
//
// The successor of an element is captured when the element is taken, so
// removing the element most recently returned by Take is safe. Removing an
// element that has not been visited yet is unsupported; if the captured
// successor has left the list the cursor is exhausted.
type Cursor[T any] struct {
	list *List[T]
	next *Element[T]
}

// Cursor returns a cursor positioned before the first element of l.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: l, next: l.head.next}
}

// HasNext reports whether Take would return an element.
func (c *Cursor[T]) HasNext() bool {
	return c.next != nil && c.next.list == c.list && c.next != c.list.tail
}

// Take returns the next element and advances the cursor, or returns nil
// once the tail is reached.
func (c *Cursor[T]) Take() *Element[T] {
	if !c.HasNext() {
		return nil
	}
	e := c.next
	c.next = e.next
	return e
}

// Elements returns an iterator over the elements of l from first to last.
// Each call starts a new pass. It is safe to remove the element just
// yielded.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		c := l.Cursor()
		for c.HasNext() {
			if !yield(c.Take()) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of l from first to last.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range l.Elements() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// All returns an iterator over positions and values of l.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := range l.Elements() {
			if !yield(i, e.Value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over the elements of l from last to first.
//
// Double kinds follow prev links. Singly linked kinds capture the elements
// up front and skip any that left the list before being reached.
func (l *List[T]) Backward() iter.Seq[*Element[T]] {
	if l.kind.double() {
		return func(yield func(*Element[T]) bool) {
			var prev *Element[T]
			for e := l.back; e != nil && e.list == l && e != l.head; e = prev {
				prev = e.prev
				if !yield(e) {
					return
				}
			}
		}
	}
	return func(yield func(*Element[T]) bool) {
		elems := make([]*Element[T], 0, l.len)
		for e := l.head.next; e != l.tail; e = e.next {
			elems = append(elems, e)
		}
		for i := len(elems) - 1; i >= 0; i-- {
			if elems[i].list != l {
				continue
			}
			if !yield(elems[i]) {
				return
			}
		}
	}
}

// ForEach calls fn with the value and position of every element of l, in
// order.
func (l *List[T]) ForEach(fn func(v T, i int)) {
	for i, v := range l.All() {
		fn(v, i)
	}
}
