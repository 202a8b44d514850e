package transport

import (
	"bufio"
	"io"
	"net"

	"github.com/juju/ratelimit"
	"gopkg.in/tomb.v2"

	"github.com/Avik32223/redis-lists/internal/logger"
)

type TCPPeer struct {
	net.Conn
}

func (t *TCPPeer) Close() error {
	if t.Conn != nil {
		return t.Conn.Close()
	}
	return nil
}

func (t *TCPPeer) Send(b []byte) error {
	_, err := t.Conn.Write(b)
	return err
}

// TCPTransport implements Transport
type TCPTransport struct {
	listener     net.Listener
	listenerAddr string
	consumeCh    chan Message
	tomb         tomb.Tomb

	// Split cuts the connection stream into messages.
	Split     bufio.SplitFunc
	Handshake HandshakeFunc
	// ReadLimit caps the bytes per second read from each connection,
	// 0 means unlimited.
	ReadLimit int64
}

func NewTCPTransport(addr string) *TCPTransport {
	return &TCPTransport{
		listenerAddr: addr,
		consumeCh:    make(chan Message),
		Split:        bufio.ScanLines,
		Handshake:    NoOpHandshake,
	}
}

// Addr returns the bound address once listening, the configured one
// before.
func (t *TCPTransport) Addr() string {
	if t.listener != nil {
		return t.listener.Addr().String()
	}
	return t.listenerAddr
}

func (t *TCPTransport) Consume() <-chan Message {
	return t.consumeCh
}

func (t *TCPTransport) Listen() error {
	ln, err := net.Listen("tcp", t.listenerAddr)
	if err != nil {
		return err
	}
	t.listener = ln

	t.tomb.Go(t.acceptLoop)
	return nil
}

// Close stops accepting, drops every connection and waits for their
// goroutines to finish.
func (t *TCPTransport) Close() error {
	if t.listener == nil {
		return nil
	}
	t.tomb.Kill(nil)
	t.listener.Close()
	return t.tomb.Wait()
}

func (t *TCPTransport) acceptLoop() error {
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			select {
			case <-t.tomb.Dying():
				return nil
			default:
			}
			logger.Noticef("tcp: cannot accept connection: %v", err)
			continue
		}

		t.tomb.Go(func() error {
			t.handleConnection(conn)
			return nil
		})
	}
}

func (t *TCPTransport) reader(c net.Conn) io.Reader {
	if t.ReadLimit <= 0 {
		return c
	}
	bucket := ratelimit.NewBucketWithRate(float64(t.ReadLimit), t.ReadLimit)
	return ratelimit.Reader(c, bucket)
}

func (t *TCPTransport) handleConnection(c net.Conn) {
	peer := &TCPPeer{Conn: c}
	defer peer.Close()
	logger.Debugf("tcp: new connection from %s", c.RemoteAddr())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-t.tomb.Dying():
			peer.Close()
		case <-done:
		}
	}()

	if err := t.Handshake(peer); err != nil {
		peer.Send([]byte(err.Error()))
		return
	}

	scanner := bufio.NewScanner(t.reader(c))
	scanner.Split(t.Split)
	for scanner.Scan() {
		msg := Message{
			Peer:    peer,
			Payload: append([]byte(nil), scanner.Bytes()...),
		}
		select {
		case t.consumeCh <- msg:
		case <-t.tomb.Dying():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Debugf("tcp: connection from %s: %v", c.RemoteAddr(), err)
	}
	logger.Debugf("tcp: closed connection from %s", c.RemoteAddr())
}
