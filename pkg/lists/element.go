package lists

// Element is an element of a linked list.
//
// An element belongs to at most one list at a time. Elements handed out by a
// list stay valid across unrelated mutations and are used as handles for
// positional operations such as InsertAfter or Remove.
type Element[T any] struct {
	// next and prev link the element into its list. prev is only
	// maintained by the double-linked kinds.
	next, prev *Element[T]

	// The list to which this element belongs, nil when detached.
	list *List[T]

	// The value stored with this element.
	Value T
}

// NewElement returns a detached element holding v. It can be handed to
// AppendElement or PrependElement to be adopted by a list.
func NewElement[T any](v T) *Element[T] {
	return &Element[T]{Value: v}
}

// Next returns the element linked after e. The result may be the tail
// sentinel, or the head sentinel when e is the tail of a circular list. It
// returns nil for a detached element and for the tail of a linear list.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the element linked before e. It is always nil for elements
// of singly linked kinds.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List returns the list e belongs to, or nil.
func (e *Element[T]) List() *List[T] {
	return e.list
}

// IsSentinel reports whether e is the head or tail sentinel of its list.
func (e *Element[T]) IsSentinel() bool {
	return e.list != nil && (e == e.list.head || e == e.list.tail)
}

// detach clears ownership and links.
func (e *Element[T]) detach() {
	e.next = nil
	e.prev = nil
	e.list = nil
}
