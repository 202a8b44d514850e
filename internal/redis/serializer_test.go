package redis

import (
	"errors"

	. "gopkg.in/check.v1"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

type serializerSuite struct{}

var _ = Suite(&serializerSuite{})

func (s *serializerSuite) TestSerialize(c *C) {
	for _, tc := range []struct {
		value    any
		expected string
	}{
		{nil, "$-1\r\n"},
		{nullArray{}, "*-1\r\n"},
		{simpleString("OK"), "+OK\r\n"},
		{"hello", "$5\r\nhello\r\n"},
		{"", "$0\r\n\r\n"},
		{"a\r\nb", "$4\r\na\r\nb\r\n"},
		{42, ":42\r\n"},
		{int64(-7), ":-7\r\n"},
		{errors.New("ERR boom"), "-ERR boom\r\n"},
		{errors.New("ERR multi\r\nline"), "-ERR multi  line\r\n"},
		{[]string{"a", "bc"}, "*2\r\n$1\r\na\r\n$2\r\nbc\r\n"},
		{[]string{}, "*0\r\n"},
		{[]any{1, "x", nil}, "*3\r\n:1\r\n$1\r\nx\r\n$-1\r\n"},
		{lists.NewCircularLinkedList("x", "y"), "*2\r\n$1\r\nx\r\n$1\r\ny\r\n"},
	} {
		b, err := Serialize(tc.value)
		c.Assert(err, IsNil)
		c.Check(string(b), Equals, tc.expected, Commentf("%#v", tc.value))
	}
}

func (s *serializerSuite) TestSerializeUnsupported(c *C) {
	_, err := Serialize(1.5)
	c.Check(err, ErrorMatches, "failed to serialize 1.5")
	_, err = Serialize([]any{struct{}{}})
	c.Check(err, ErrorMatches, `failed to serialize struct \{\}\{\}`)
}
