// Package lists implements singly linked, doubly linked, circular singly
// linked and circular doubly linked lists behind a single generic type.
//
// Every list is bounded by two permanent sentinel elements, head and tail.
// User elements live strictly between them:
//
//	l := lists.NewDoubleLinkedList(1, 2, 3)
//	for e := range l.Elements() {
//		// do something with e.Value
//	}
//
// The Kind chosen at construction only changes how links are maintained:
// circular kinds link the tail forward to the head, double kinds maintain
// prev links, and CircularDouble additionally links the head back to the
// tail.
//
// Lists are not safe for concurrent use.
package lists

// List is a linked list of values of type T.
//
// The zero value is not ready to use; create lists with New or one of the
// kind specific constructors.
type List[T any] struct {
	// sentinels, never hold a user value and are never removed
	head, tail *Element[T]
	// back is the element linked before tail, head when the list is empty.
	back *Element[T]
	len  int
	kind Kind
}

// New returns a list of the given kind holding values in order.
func New[T any](kind Kind, values ...T) *List[T] {
	l := new(List[T]).init(kind)
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// NewLinkedList returns a linear singly linked list holding values.
func NewLinkedList[T any](values ...T) *List[T] {
	return New(Linked, values...)
}

// NewCircularLinkedList returns a circular singly linked list holding values.
func NewCircularLinkedList[T any](values ...T) *List[T] {
	return New(Circular, values...)
}

// NewDoubleLinkedList returns a linear doubly linked list holding values.
func NewDoubleLinkedList[T any](values ...T) *List[T] {
	return New(Double, values...)
}

// NewCircularDoubleLinkedList returns a circular doubly linked list holding
// values.
func NewCircularDoubleLinkedList[T any](values ...T) *List[T] {
	return New(CircularDouble, values...)
}

func (l *List[T]) init(kind Kind) *List[T] {
	l.kind = kind
	l.head = &Element[T]{list: l}
	l.tail = &Element[T]{list: l}
	l.reset()
	return l
}

// reset links the sentinels to each other without touching any element
// that may still point into the list.
func (l *List[T]) reset() {
	l.head.next = l.tail
	l.back = l.head
	l.len = 0
	if l.kind.circular() {
		l.tail.next = l.head
	}
	if l.kind.double() {
		l.tail.prev = l.head
		if l.kind.circular() {
			l.head.prev = l.tail
		}
	}
}

// Kind returns the topology of l.
func (l *List[T]) Kind() Kind { return l.kind }

// Len returns the number of user elements of l.
// The complexity is O(1).
func (l *List[T]) Len() int { return l.len }

// Head returns the head sentinel. It is a valid anchor for InsertAfter.
func (l *List[T]) Head() *Element[T] { return l.head }

// Tail returns the tail sentinel. It is a valid anchor for InsertBefore.
func (l *List[T]) Tail() *Element[T] { return l.tail }

// First returns the first element of l or nil if the list is empty.
func (l *List[T]) First() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.head.next
}

// Last returns the last element of l or nil if the list is empty.
func (l *List[T]) Last() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.back
}

// link inserts e after at, increments l.len, and returns e.
func (l *List[T]) link(e, at *Element[T]) *Element[T] {
	n := at.next
	at.next = e
	e.next = n
	if l.kind.double() {
		e.prev = at
		n.prev = e
	}
	if at == l.back {
		l.back = e
	}
	e.list = l
	l.len++
	return e
}

// prevOf returns the element linked before e, which must belong to l and
// must not be the head sentinel. It is O(n) for singly linked kinds unless
// e is the tail.
func (l *List[T]) prevOf(e *Element[T]) *Element[T] {
	if l.kind.double() {
		return e.prev
	}
	if e == l.tail {
		return l.back
	}
	p := l.head
	for p.next != e {
		p = p.next
	}
	return p
}

// unlink removes e from l, decrements l.len, and returns e detached.
func (l *List[T]) unlink(e *Element[T]) *Element[T] {
	p := l.prevOf(e)
	p.next = e.next
	if l.kind.double() {
		e.next.prev = p
	}
	if e == l.back {
		l.back = p
	}
	e.detach()
	l.len--
	return e
}

// owns reports whether e is a user element of l.
func (l *List[T]) owns(e *Element[T]) error {
	if e == nil || e.list != l {
		return ErrNotOwned
	}
	if e == l.head || e == l.tail {
		return ErrSentinel
	}
	return nil
}

// InsertAfter inserts a new element holding v immediately after anchor and
// returns it. The anchor must belong to l; the head sentinel is accepted,
// the tail sentinel is not.
func (l *List[T]) InsertAfter(anchor *Element[T], v T) (*Element[T], error) {
	if anchor == nil || anchor.list != l || anchor == l.tail {
		return nil, ErrInvalidAnchor
	}
	return l.link(NewElement(v), anchor), nil
}

// InsertBefore inserts a new element holding v immediately before anchor
// and returns it. The anchor must belong to l; the tail sentinel is
// accepted, the head sentinel is not.
func (l *List[T]) InsertBefore(anchor *Element[T], v T) (*Element[T], error) {
	if anchor == nil || anchor.list != l || anchor == l.head {
		return nil, ErrInvalidAnchor
	}
	return l.link(NewElement(v), l.prevOf(anchor)), nil
}

// Append inserts a new element holding v at the end of l and returns it.
func (l *List[T]) Append(v T) *Element[T] {
	return l.link(NewElement(v), l.back)
}

// Push is Append.
func (l *List[T]) Push(v T) *Element[T] { return l.Append(v) }

// Prepend inserts a new element holding v at the front of l and returns it.
func (l *List[T]) Prepend(v T) *Element[T] {
	return l.link(NewElement(v), l.head)
}

// Unshift is Prepend.
func (l *List[T]) Unshift(v T) *Element[T] { return l.Prepend(v) }

// adoptable reports whether e is a detached element that can be linked into
// a list.
func adoptable[T any](e *Element[T]) error {
	if e == nil {
		return ErrNotOwned
	}
	if e.list != nil {
		return ErrElementOwned
	}
	return nil
}

// AppendElement links the detached element e at the end of l, keeping its
// identity.
func (l *List[T]) AppendElement(e *Element[T]) error {
	if err := adoptable(e); err != nil {
		return err
	}
	l.link(e, l.back)
	return nil
}

// PushElement is AppendElement.
func (l *List[T]) PushElement(e *Element[T]) error { return l.AppendElement(e) }

// PrependElement links the detached element e at the front of l, keeping
// its identity.
func (l *List[T]) PrependElement(e *Element[T]) error {
	if err := adoptable(e); err != nil {
		return err
	}
	l.link(e, l.head)
	return nil
}

// UnshiftElement is PrependElement.
func (l *List[T]) UnshiftElement(e *Element[T]) error { return l.PrependElement(e) }

// Remove unlinks e from l and returns it detached.
func (l *List[T]) Remove(e *Element[T]) (*Element[T], error) {
	if err := l.owns(e); err != nil {
		return nil, err
	}
	return l.unlink(e), nil
}

// Pop removes and returns the last element of l, or nil if l is empty.
func (l *List[T]) Pop() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.unlink(l.back)
}

// Shift removes and returns the first element of l, or nil if l is empty.
func (l *List[T]) Shift() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.unlink(l.head.next)
}

// Clear removes all elements of l, detaching each of them.
func (l *List[T]) Clear() {
	for e := l.head.next; e != l.tail; {
		next := e.next
		e.detach()
		e = next
	}
	l.reset()
}

// MoveToBack moves e to the end of l.
func (l *List[T]) MoveToBack(e *Element[T]) error {
	if err := l.owns(e); err != nil {
		return err
	}
	if e == l.back {
		return nil
	}
	l.link(l.unlink(e), l.back)
	return nil
}

// MoveToFront moves e to the front of l.
func (l *List[T]) MoveToFront(e *Element[T]) error {
	if err := l.owns(e); err != nil {
		return err
	}
	if e == l.head.next {
		return nil
	}
	l.link(l.unlink(e), l.head)
	return nil
}

// Concat moves every element of other, in order, to the end of l. other is
// left empty. The kinds of the two lists may differ. Concatenating a list
// with itself does nothing.
func (l *List[T]) Concat(other *List[T]) {
	if other == nil || other == l {
		return
	}
	for e := other.head.next; e != other.tail; {
		next := e.next
		e.detach()
		l.link(e, l.back)
		e = next
	}
	other.reset()
}

// FindFunc returns the first element whose value satisfies match, or nil.
func (l *List[T]) FindFunc(match func(T) bool) *Element[T] {
	for e := l.head.next; e != l.tail; e = e.next {
		if match(e.Value) {
			return e
		}
	}
	return nil
}

// Find returns the first element of l whose value equals v, or nil.
func Find[T comparable](l *List[T], v T) *Element[T] {
	return l.FindFunc(func(x T) bool { return x == v })
}

// Item returns the element at position index. Negative indices count from
// the end, -1 being the last element.
func (l *List[T]) Item(index int) (*Element[T], error) {
	i := index
	if i < 0 {
		i += l.len
	}
	if i < 0 || i >= l.len {
		return nil, &IndexError{Index: index, Len: l.len}
	}
	return l.at(i), nil
}

// at walks to position i, which must be in [0, l.len]; l.len yields the
// tail sentinel. Double kinds walk from whichever end is closer.
func (l *List[T]) at(i int) *Element[T] {
	if l.kind.double() && i > l.len/2 {
		e := l.tail
		for n := l.len; n > i; n-- {
			e = e.prev
		}
		return e
	}
	e := l.head.next
	for ; i > 0; i-- {
		e = e.next
	}
	return e
}

// ToSlice returns the values of l in order.
func (l *List[T]) ToSlice() []T {
	res := make([]T, 0, l.len)
	for e := l.head.next; e != l.tail; e = e.next {
		res = append(res, e.Value)
	}
	return res
}
