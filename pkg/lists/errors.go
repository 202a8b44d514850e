package lists

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnchor is returned when an insertion anchor is not an
	// element of the list, or is a sentinel on the wrong side.
	ErrInvalidAnchor = errors.New("invalid anchor element")
	// ErrNotOwned is returned when removing or moving an element that is
	// not part of the list, and when adopting a nil element.
	ErrNotOwned = errors.New("element not owned by list")
	// ErrSentinel is returned when removing or moving a head or tail
	// sentinel.
	ErrSentinel = errors.New("cannot remove sentinel element")
	// ErrElementOwned is returned when adopting an element that already
	// belongs to a list.
	ErrElementOwned = errors.New("element already owned by a list")
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a positional lookup outside of the list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
