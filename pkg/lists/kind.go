package lists

import "fmt"

// Kind selects the topology of a list.
type Kind uint8

const (
	circularBit Kind = 1 << iota
	doubleBit
)

const (
	// Linked is a linear singly linked list.
	Linked Kind = 0
	// Circular is a singly linked list whose tail links back to its head.
	Circular Kind = circularBit
	// Double is a linear doubly linked list.
	Double Kind = doubleBit
	// CircularDouble is a doubly linked ring: tail links forward to head
	// and head links back to tail.
	CircularDouble Kind = circularBit | doubleBit
)

var kindNames = map[Kind]string{
	Linked:         "linked",
	Circular:       "circular",
	Double:         "double",
	CircularDouble: "circular-double",
}

func (k Kind) circular() bool { return k&circularBit != 0 }
func (k Kind) double() bool   { return k&doubleBit != 0 }

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind named s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown list kind %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown list kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}
