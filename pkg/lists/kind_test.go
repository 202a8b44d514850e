package lists_test

import (
	. "gopkg.in/check.v1"

	"github.com/Avik32223/redis-lists/pkg/lists"
)

type kindSuite struct{}

var _ = Suite(&kindSuite{})

func (s *kindSuite) TestParseKind(c *C) {
	for _, tc := range []struct {
		name string
		kind lists.Kind
	}{
		{"linked", lists.Linked},
		{"circular", lists.Circular},
		{"double", lists.Double},
		{"circular-double", lists.CircularDouble},
	} {
		k, err := lists.ParseKind(tc.name)
		c.Assert(err, IsNil)
		c.Check(k, Equals, tc.kind)
		c.Check(k.String(), Equals, tc.name)
	}

	_, err := lists.ParseKind("skip")
	c.Check(err, ErrorMatches, `unknown list kind "skip"`)
}

func (s *kindSuite) TestTextRoundTrip(c *C) {
	var k lists.Kind
	c.Assert(k.UnmarshalText([]byte("circular-double")), IsNil)
	c.Check(k, Equals, lists.CircularDouble)

	text, err := k.MarshalText()
	c.Assert(err, IsNil)
	c.Check(string(text), Equals, "circular-double")

	c.Check(k.UnmarshalText([]byte("ring")), NotNil)
	_, err = lists.Kind(9).MarshalText()
	c.Check(err, ErrorMatches, "unknown list kind 9")
	c.Check(lists.Kind(9).String(), Equals, "Kind(9)")
}

func (s *kindSuite) TestConstructors(c *C) {
	c.Check(lists.NewLinkedList[int]().Kind(), Equals, lists.Linked)
	c.Check(lists.NewCircularLinkedList[int]().Kind(), Equals, lists.Circular)
	c.Check(lists.NewDoubleLinkedList[int]().Kind(), Equals, lists.Double)
	c.Check(lists.NewCircularDoubleLinkedList("a", "b").ToSlice(), DeepEquals, []string{"a", "b"})
}
