package redis

import (
	"time"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

// State is the keyspace. It is owned by the server loop and must not be
// shared between goroutines.
type State struct {
	data map[string]*stateValue
	// kind of the lists created by push commands
	kind lists.Kind
	now  func() time.Time
}

type stateValue struct {
	val any
	// zero when the key does not expire
	expiresAt time.Time
}

func NewState(kind lists.Kind) *State {
	return &State{
		data: make(map[string]*stateValue),
		kind: kind,
		now:  time.Now,
	}
}

// lookup returns the live value under key, dropping it if it expired.
func (s *State) lookup(key string) (any, bool) {
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if !v.expiresAt.IsZero() && !s.now().Before(v.expiresAt) {
		delete(s.data, key)
		return nil, false
	}
	return v.val, true
}

func (s *State) store(key string, val any, expiresAt time.Time) {
	s.data[key] = &stateValue{val: val, expiresAt: expiresAt}
}

// replace swaps the value of an existing key keeping its expiry, or stores
// a new non expiring key.
func (s *State) replace(key string, val any) {
	if v, ok := s.data[key]; ok {
		v.val = val
		return
	}
	s.store(key, val, time.Time{})
}

func (s *State) remove(key string) bool {
	if _, ok := s.lookup(key); !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// list returns the list under key. A missing key yields a new empty list
// when create is set, nil otherwise. The new list is only stored once it
// holds elements, see keepList.
func (s *State) list(key string, create bool) (*lists.List[string], error) {
	v, ok := s.lookup(key)
	if !ok {
		if !create {
			return nil, nil
		}
		return lists.New[string](s.kind), nil
	}
	l, ok := v.(*lists.List[string])
	if !ok {
		return nil, errWrongType
	}
	return l, nil
}

// keepList stores l under key, or drops the key once l is empty.
func (s *State) keepList(key string, l *lists.List[string]) {
	if l.Len() == 0 {
		delete(s.data, key)
		return
	}
	if v, ok := s.data[key]; ok && v.val == any(l) {
		return
	}
	s.replace(key, l)
}
