package redis

import (
	"bufio"
	"io"
	"net"
	"time"

	. "gopkg.in/check.v1"

	"github.com/Avik32223/redis-lists/internal/config"
	"github.com/Avik32223/redis-lists/internal/logger"
	"github.com/Avik32223/redis-lists/pkg/lists"
)

type serverSuite struct {
	srv     *Server
	conn    net.Conn
	r       *bufio.Reader
	restore func()
}

var _ = Suite(&serverSuite{})

func (s *serverSuite) SetUpTest(c *C) {
	_, s.restore = logger.MockLogger()
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	cfg.ListKind = lists.CircularDouble
	s.srv = NewServer(cfg)
	c.Assert(s.srv.Start(), IsNil)

	var err error
	s.conn, err = net.DialTimeout("tcp", s.srv.Transport.Addr(), 5*time.Second)
	c.Assert(err, IsNil)
	s.conn.SetDeadline(time.Now().Add(10 * time.Second))
	s.r = bufio.NewReader(s.conn)
}

func (s *serverSuite) TearDownTest(c *C) {
	s.conn.Close()
	c.Check(s.srv.Stop(), IsNil)
	s.restore()
}

func (s *serverSuite) expect(c *C, reply string) {
	buf := make([]byte, len(reply))
	_, err := io.ReadFull(s.r, buf)
	c.Assert(err, IsNil)
	c.Check(string(buf), Equals, reply)
}

func (s *serverSuite) TestRoundTrip(c *C) {
	_, err := s.conn.Write(encodeRequest("RPUSH", "k", "a", "b", "c"))
	c.Assert(err, IsNil)
	s.expect(c, ":3\r\n")

	_, err = s.conn.Write(encodeRequest("LRANGE", "k", "0", "-1"))
	c.Assert(err, IsNil)
	s.expect(c, "*3\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n")
}

func (s *serverSuite) TestPipelinedAndInline(c *C) {
	req := append(encodeRequest("LPUSH", "k", "x"), encodeRequest("LPOP", "k")...)
	req = append(req, "PING\r\nbogus\r\n"...)
	_, err := s.conn.Write(req)
	c.Assert(err, IsNil)
	s.expect(c, ":1\r\n$1\r\nx\r\n+PONG\r\n-ERR unknown command 'bogus'\r\n")
}

func (s *serverSuite) TestBinarySafeValues(c *C) {
	_, err := s.conn.Write(encodeRequest("SET", "k", "a\r\nb"))
	c.Assert(err, IsNil)
	s.expect(c, "+OK\r\n")
	_, err = s.conn.Write(encodeRequest("GET", "k"))
	c.Assert(err, IsNil)
	s.expect(c, "$4\r\na\r\nb\r\n")
}

type serverLifecycleSuite struct{}

var _ = Suite(&serverLifecycleSuite{})

func stopWithin(c *C, srv *Server, d time.Duration) {
	done := make(chan error, 1)
	go func() { done <- srv.Stop() }()
	select {
	case err := <-done:
		c.Check(err, IsNil)
	case <-time.After(d):
		c.Fatalf("Stop did not return within %v", d)
	}
}

func (s *serverLifecycleSuite) TestStopNeverStarted(c *C) {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	stopWithin(c, NewServer(cfg), 5*time.Second)
}

func (s *serverLifecycleSuite) TestStopAfterFailedStart(c *C) {
	_, restore := logger.MockLogger()
	defer restore()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	c.Assert(err, IsNil)
	defer busy.Close()

	cfg := config.Default()
	cfg.Addr = busy.Addr().String()
	srv := NewServer(cfg)
	c.Assert(srv.Start(), ErrorMatches, "cannot listen on .*")
	stopWithin(c, srv, 5*time.Second)
}
