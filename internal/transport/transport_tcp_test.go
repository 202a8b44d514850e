package transport_test

import (
	"bufio"
	"errors"
	"net"
	"testing"
	"time"

	. "gopkg.in/check.v1"

	"github.com/Avik32223/redis-lists/internal/transport"
)

func Test(t *testing.T) { TestingT(t) }

type tcpSuite struct {
	tr *transport.TCPTransport
}

var _ = Suite(&tcpSuite{})

func (s *tcpSuite) SetUpTest(c *C) {
	s.tr = transport.NewTCPTransport("127.0.0.1:0")
}

func (s *tcpSuite) TearDownTest(c *C) {
	c.Check(s.tr.Close(), IsNil)
}

func (s *tcpSuite) dial(c *C) net.Conn {
	conn, err := net.DialTimeout("tcp", s.tr.Addr(), 5*time.Second)
	c.Assert(err, IsNil)
	return conn
}

func (s *tcpSuite) receive(c *C) transport.Message {
	select {
	case msg := <-s.tr.Consume():
		return msg
	case <-time.After(5 * time.Second):
		c.Fatal("timeout waiting for message")
	}
	return transport.Message{}
}

func (s *tcpSuite) TestRoundTrip(c *C) {
	c.Assert(s.tr.Listen(), IsNil)
	conn := s.dial(c)
	defer conn.Close()

	_, err := conn.Write([]byte("PING\r\nECHO hi\r\n"))
	c.Assert(err, IsNil)

	msg := s.receive(c)
	c.Check(string(msg.Payload), Equals, "PING")
	c.Assert(msg.Peer.Send([]byte("+PONG\r\n")), IsNil)
	msg = s.receive(c)
	c.Check(string(msg.Payload), Equals, "ECHO hi")

	line, err := bufio.NewReader(conn).ReadString('\n')
	c.Assert(err, IsNil)
	c.Check(line, Equals, "+PONG\r\n")
}

func (s *tcpSuite) TestReadLimit(c *C) {
	s.tr.ReadLimit = 1 << 20
	c.Assert(s.tr.Listen(), IsNil)
	conn := s.dial(c)
	defer conn.Close()

	_, err := conn.Write([]byte("hello\n"))
	c.Assert(err, IsNil)
	c.Check(string(s.receive(c).Payload), Equals, "hello")
}

func (s *tcpSuite) TestHandshakeRejects(c *C) {
	s.tr.Handshake = func(transport.Peer) error { return errors.New("-ERR go away\r\n") }
	c.Assert(s.tr.Listen(), IsNil)
	conn := s.dial(c)
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')
	c.Assert(err, IsNil)
	c.Check(line, Equals, "-ERR go away\r\n")
}

func (s *tcpSuite) TestCloseDropsConnections(c *C) {
	c.Assert(s.tr.Listen(), IsNil)
	conn := s.dial(c)
	defer conn.Close()
	_, err := conn.Write([]byte("PING\n"))
	c.Assert(err, IsNil)
	s.receive(c)

	c.Assert(s.tr.Close(), IsNil)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, err = conn.Read(make([]byte, 1))
	c.Check(err, NotNil)
}

func (s *tcpSuite) TestCloseBeforeListen(c *C) {
	c.Check(transport.NewTCPTransport(":0").Close(), IsNil)
}
