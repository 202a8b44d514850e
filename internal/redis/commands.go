package redis

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

var (
	errorInvalidCommand = errors.New("ERR unknown command")
	errorNotInteger     = errors.New("ERR value is not an integer or out of range")
	errorSyntax         = errors.New("ERR syntax error")
	errWrongType        = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	errOverflow         = errors.New("ERR increment or decrement would overflow")
)

const replyOK = simpleString("OK")

type Command func(*State, ...string) (any, error)

type commandInfo struct {
	run Command
	// bounds on the number of arguments after the command name, a
	// negative maxArgs means unbounded
	minArgs, maxArgs int
}

var commandMap = map[string]commandInfo{
	"command": {command, 0, -1},
	"ping":    {ping, 0, 1},
	"echo":    {echo, 1, 1},
	"get":     {get, 1, 1},
	"set":     {set, 2, -1},
	"exists":  {exists, 1, -1},
	"del":     {del, 1, -1},
	"incr":    {incr, 1, 1},
	"decr":    {decr, 1, 1},
	"type":    {typeOf, 1, 1},
	"lpush":   {lpush, 2, -1},
	"rpush":   {rpush, 2, -1},
	"lpushx":  {lpushx, 2, -1},
	"rpushx":  {rpushx, 2, -1},
	"lpop":    {lpop, 1, 2},
	"rpop":    {rpop, 1, 2},
	"llen":    {llen, 1, 1},
	"lindex":  {lindex, 2, 2},
	"lset":    {lset, 3, 3},
	"lrange":  {lrange, 3, 3},
	"lrem":    {lrem, 3, 3},
	"linsert": {linsert, 4, 4},
	"lmove":   {lmove, 4, 4},
}

func (ci commandInfo) accepts(n int) bool {
	return n >= ci.minArgs && (ci.maxArgs < 0 || n <= ci.maxArgs)
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errorNotInteger
	}
	return i, nil
}

func ping(s *State, args ...string) (any, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return simpleString("PONG"), nil
}

func echo(s *State, args ...string) (any, error) {
	return args[0], nil
}

func command(s *State, args ...string) (any, error) {
	return []any{}, nil
}

func get(s *State, args ...string) (any, error) {
	v, found := s.lookup(args[0])
	if !found {
		return nil, nil
	}
	str, isString := v.(string)
	if !isString {
		return nil, errWrongType
	}
	return str, nil
}

func set(s *State, args ...string) (any, error) {
	key, value := args[0], args[1]
	var expiresAt time.Time
	expiryFound := false
	for i := 2; i < len(args); i++ {
		opt := strings.ToUpper(args[i])
		switch opt {
		case "EX", "PX", "EXAT", "PXAT":
		default:
			return nil, errorSyntax
		}
		if expiryFound || i+1 >= len(args) {
			return nil, errorSyntax
		}
		amount, err := parseInt(args[i+1])
		if err != nil {
			return nil, err
		}
		if amount <= 0 {
			return nil, fmt.Errorf("ERR invalid expire time in 'set' command")
		}
		now := s.now()
		switch opt {
		case "EX":
			expiresAt = now.Add(time.Duration(amount) * time.Second)
		case "PX":
			expiresAt = now.Add(time.Duration(amount) * time.Millisecond)
		case "EXAT":
			expiresAt = time.Unix(int64(amount), 0)
		case "PXAT":
			expiresAt = time.UnixMilli(int64(amount))
		}
		expiryFound = true
		i++
	}
	s.store(key, value, expiresAt)
	return replyOK, nil
}

func exists(s *State, args ...string) (any, error) {
	c := 0
	for _, key := range args {
		if _, found := s.lookup(key); found {
			c++
		}
	}
	return c, nil
}

func del(s *State, args ...string) (any, error) {
	c := 0
	for _, key := range args {
		if s.remove(key) {
			c++
		}
	}
	return c, nil
}

func incrBy(s *State, key string, amount int) (any, error) {
	v, err := get(s, key)
	if err != nil {
		return nil, err
	}
	current := 0
	if v != nil {
		if current, err = parseInt(v.(string)); err != nil {
			return nil, err
		}
	}
	if (amount > 0 && current > math.MaxInt-amount) || (amount < 0 && current < math.MinInt-amount) {
		return nil, errOverflow
	}
	nv := current + amount
	s.replace(key, strconv.Itoa(nv))
	return nv, nil
}

func incr(s *State, args ...string) (any, error) {
	return incrBy(s, args[0], 1)
}

func decr(s *State, args ...string) (any, error) {
	return incrBy(s, args[0], -1)
}

func typeOf(s *State, args ...string) (any, error) {
	v, found := s.lookup(args[0])
	if !found {
		return simpleString("none"), nil
	}
	if _, isList := v.(*lists.List[string]); isList {
		return simpleString("list"), nil
	}
	return simpleString("string"), nil
}

func push(s *State, args []string, front, create bool) (any, error) {
	key := args[0]
	l, err := s.list(key, create)
	if err != nil || l == nil {
		return 0, err
	}
	for _, v := range args[1:] {
		if front {
			l.Prepend(v)
		} else {
			l.Append(v)
		}
	}
	s.keepList(key, l)
	return l.Len(), nil
}

func lpush(s *State, args ...string) (any, error)  { return push(s, args, true, true) }
func rpush(s *State, args ...string) (any, error)  { return push(s, args, false, true) }
func lpushx(s *State, args ...string) (any, error) { return push(s, args, true, false) }
func rpushx(s *State, args ...string) (any, error) { return push(s, args, false, false) }

func pop(s *State, args []string, front bool) (any, error) {
	count := -1
	if len(args) == 2 {
		n, err := parseInt(args[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("ERR value is out of range, must be positive")
		}
		count = n
	}
	key := args[0]
	l, err := s.list(key, false)
	if err != nil {
		return nil, err
	}
	if l == nil {
		if count < 0 {
			return nil, nil
		}
		return nullArray{}, nil
	}

	take := l.Pop
	if front {
		take = l.Shift
	}
	if count < 0 {
		v := take().Value
		s.keepList(key, l)
		return v, nil
	}
	res := make([]string, 0, min(count, l.Len()))
	for len(res) < count && l.Len() > 0 {
		res = append(res, take().Value)
	}
	s.keepList(key, l)
	return res, nil
}

func lpop(s *State, args ...string) (any, error) { return pop(s, args, true) }
func rpop(s *State, args ...string) (any, error) { return pop(s, args, false) }

func llen(s *State, args ...string) (any, error) {
	l, err := s.list(args[0], false)
	if err != nil || l == nil {
		return 0, err
	}
	return l.Len(), nil
}

func lindex(s *State, args ...string) (any, error) {
	index, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}
	l, err := s.list(args[0], false)
	if err != nil || l == nil {
		return nil, err
	}
	e, err := l.Item(index)
	if errors.Is(err, lists.ErrIndexOutOfRange) {
		return nil, nil
	}
	return e.Value, nil
}

func lset(s *State, args ...string) (any, error) {
	index, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}
	l, err := s.list(args[0], false)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("ERR no such key")
	}
	e, err := l.Item(index)
	if err != nil {
		return nil, fmt.Errorf("ERR index out of range")
	}
	e.Value = args[2]
	return replyOK, nil
}

func lrange(s *State, args ...string) (any, error) {
	start, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt(args[2])
	if err != nil {
		return nil, err
	}
	l, err := s.list(args[0], false)
	if err != nil || l == nil {
		return []string{}, err
	}

	n := l.Len()
	if start < 0 {
		start = max(start+n, 0)
	}
	if stop < 0 {
		stop += n
	}
	stop = min(stop, n-1)
	if start > stop {
		return []string{}, nil
	}
	res := make([]string, 0, stop-start+1)
	e, err := l.Item(start)
	if err != nil {
		return []string{}, nil
	}
	for ; len(res) < cap(res); e = e.Next() {
		res = append(res, e.Value)
	}
	return res, nil
}

func lrem(s *State, args ...string) (any, error) {
	count, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}
	key, value := args[0], args[2]
	l, err := s.list(key, false)
	if err != nil || l == nil {
		return 0, err
	}

	walk := l.Elements()
	if count < 0 {
		walk = l.Backward()
		count = -count
	}
	removed := 0
	for e := range walk {
		if e.Value != value {
			continue
		}
		if _, err := l.Remove(e); err != nil {
			return nil, err
		}
		removed++
		if removed == count {
			break
		}
	}
	s.keepList(key, l)
	return removed, nil
}

func linsert(s *State, args ...string) (any, error) {
	var before bool
	switch strings.ToUpper(args[1]) {
	case "BEFORE":
		before = true
	case "AFTER":
	default:
		return nil, errorSyntax
	}
	l, err := s.list(args[0], false)
	if err != nil || l == nil {
		return 0, err
	}
	pivot := lists.Find(l, args[2])
	if pivot == nil {
		return -1, nil
	}
	if before {
		_, err = l.InsertBefore(pivot, args[3])
	} else {
		_, err = l.InsertAfter(pivot, args[3])
	}
	if err != nil {
		return nil, err
	}
	return l.Len(), nil
}

func parseSide(arg string) (front bool, err error) {
	switch strings.ToUpper(arg) {
	case "LEFT":
		return true, nil
	case "RIGHT":
		return false, nil
	}
	return false, errorSyntax
}

// lmove transfers the element itself from src to dst.
func lmove(s *State, args ...string) (any, error) {
	srcKey, dstKey := args[0], args[1]
	fromFront, err := parseSide(args[2])
	if err != nil {
		return nil, err
	}
	toFront, err := parseSide(args[3])
	if err != nil {
		return nil, err
	}
	src, err := s.list(srcKey, false)
	if err != nil || src == nil {
		return nil, err
	}
	dst, err := s.list(dstKey, true)
	if err != nil {
		return nil, err
	}

	var e *lists.Element[string]
	if fromFront {
		e = src.Shift()
	} else {
		e = src.Pop()
	}
	if toFront {
		err = dst.PrependElement(e)
	} else {
		err = dst.AppendElement(e)
	}
	if err != nil {
		return nil, err
	}
	s.keepList(srcKey, src)
	s.keepList(dstKey, dst)
	return e.Value, nil
}

func lookupCommand(name string) (commandInfo, bool) {
	ci, found := commandMap[strings.ToLower(name)]
	return ci, found
}

// RunCommand decodes a request cut by splitMessage and runs it against s.
func RunCommand(s *State, b []byte) (any, error) {
	args, err := decodeRequest(b)
	if err != nil {
		return nil, err
	}
	if len(args) < 1 {
		return nil, errorInvalidCommand
	}
	ci, found := lookupCommand(args[0])
	if !found {
		return nil, fmt.Errorf("%w '%s'", errorInvalidCommand, args[0])
	}
	if !ci.accepts(len(args) - 1) {
		return nil, fmt.Errorf("ERR wrong number of arguments for '%s' command", strings.ToLower(args[0]))
	}
	return ci.run(s, args[1:]...)
}
