package redis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

// simpleString is a status reply such as OK or PONG.
type simpleString string

// nullArray is the null reply of commands that otherwise return arrays.
type nullArray struct{}

var errorReplacer = strings.NewReplacer("\r", " ", "\n", " ")

func appendBulkString(dst []byte, s string) []byte {
	dst = append(dst, '$')
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, crlf...)
	dst = append(dst, s...)
	return append(dst, crlf...)
}

func appendArrayHeader(dst []byte, n int) []byte {
	dst = append(dst, '*')
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, crlf...)
}

func appendReply(dst []byte, m any) ([]byte, error) {
	switch m := m.(type) {
	case nil:
		return append(dst, "$-1\r\n"...), nil
	case nullArray:
		return append(dst, "*-1\r\n"...), nil
	case simpleString:
		dst = append(dst, '+')
		dst = append(dst, errorReplacer.Replace(string(m))...)
		return append(dst, crlf...), nil
	case error:
		dst = append(dst, '-')
		dst = append(dst, errorReplacer.Replace(m.Error())...)
		return append(dst, crlf...), nil
	case string:
		return appendBulkString(dst, m), nil
	case int:
		return appendInt(dst, int64(m)), nil
	case int64:
		return appendInt(dst, m), nil
	case []string:
		dst = appendArrayHeader(dst, len(m))
		for _, s := range m {
			dst = appendBulkString(dst, s)
		}
		return dst, nil
	case []any:
		dst = appendArrayHeader(dst, len(m))
		for _, v := range m {
			var err error
			if dst, err = appendReply(dst, v); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case *lists.List[string]:
		dst = appendArrayHeader(dst, m.Len())
		for v := range m.Values() {
			dst = appendBulkString(dst, v)
		}
		return dst, nil
	}
	return nil, fmt.Errorf("failed to serialize %#v", m)
}

func appendInt(dst []byte, i int64) []byte {
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, i, 10)
	return append(dst, crlf...)
}

// Serialize encodes a command result as a RESP reply.
func Serialize(m any) ([]byte, error) {
	return appendReply(nil, m)
}
