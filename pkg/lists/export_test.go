package lists

import "fmt"

// Back exposes the cached element linked before the tail.
func (l *List[T]) Back() *Element[T] { return l.back }

// CheckInvariants walks l and verifies ownership, length, circular and
// double-link invariants.
func (l *List[T]) CheckInvariants() error {
	if l.head.list != l || l.tail.list != l {
		return fmt.Errorf("sentinels not owned by list")
	}
	if l.kind.circular() && l.tail.next != l.head {
		return fmt.Errorf("tail.next is not head")
	}
	if !l.kind.circular() && l.tail.next != nil {
		return fmt.Errorf("tail.next of linear list is not nil")
	}
	if l.kind == CircularDouble && l.head.prev != l.tail {
		return fmt.Errorf("head.prev is not tail")
	}
	n := 0
	prev := l.head
	for e := l.head.next; ; e = e.next {
		if e == nil {
			return fmt.Errorf("nil link after %d elements", n)
		}
		if e.list != l {
			return fmt.Errorf("element %d not owned by list", n)
		}
		if l.kind.double() && e.prev != prev {
			return fmt.Errorf("element %d: prev link broken", n)
		}
		if !l.kind.double() && e.prev != nil {
			return fmt.Errorf("element %d: prev link set on singly linked list", n)
		}
		if e == l.tail {
			break
		}
		n++
		prev = e
	}
	if n != l.len {
		return fmt.Errorf("counted %d elements, len is %d", n, l.len)
	}
	if prev != l.back {
		return fmt.Errorf("back is not the element before tail")
	}
	return nil
}
