package redis

import (
	"golang.org/x/xerrors"
	"gopkg.in/tomb.v2"

	"github.com/Avik32223/redis-lists/internal/config"
	"github.com/Avik32223/redis-lists/internal/logger"
	"github.com/Avik32223/redis-lists/internal/transport"
)

// Server runs every request against its State from a single goroutine;
// connections only feed the transport's consume channel.
type Server struct {
	Transport transport.Transport
	tomb      tomb.Tomb
	// set once the command loop runs, Stop must not wait on it otherwise
	started bool

	state *State
}

func NewServer(cfg *config.Config) *Server {
	t := transport.NewTCPTransport(cfg.Addr)
	t.Split = splitMessage
	t.ReadLimit = cfg.ReadLimit

	return &Server{
		Transport: t,
		state:     NewState(cfg.ListKind),
	}
}

// Start listens and serves in the background until Stop.
func (s *Server) Start() error {
	if err := s.Transport.Listen(); err != nil {
		return xerrors.Errorf("cannot listen on %s: %w", s.Transport.Addr(), err)
	}
	logger.Noticef("serving %s lists on %s", s.state.kind, s.Transport.Addr())
	s.tomb.Go(s.loop)
	s.started = true
	return nil
}

func (s *Server) loop() error {
	for {
		select {
		case msg := <-s.Transport.Consume():
			if err := s.HandleMessage(msg); err != nil {
				logger.Debugf("cannot reply to %s: %v", msg.Peer.RemoteAddr(), err)
			}
		case <-s.tomb.Dying():
			return nil
		}
	}
}

// Dead is closed once the server stopped.
func (s *Server) Dead() <-chan struct{} {
	return s.tomb.Dead()
}

// Stop ends the command loop and closes the transport. It is safe to call
// on a server that never started or whose Start failed.
func (s *Server) Stop() error {
	var err error
	if s.started {
		s.tomb.Kill(nil)
		err = s.tomb.Wait()
	}
	if cerr := s.Transport.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *Server) HandleMessage(m transport.Message) error {
	res, err := RunCommand(s.state, m.Payload)
	if err != nil {
		logger.Debugf("command %q failed: %v", m.Payload, err)
		res = err
	}
	reply, err := Serialize(res)
	if err != nil {
		reply, _ = Serialize(err)
	}
	return m.Peer.Send(reply)
}
