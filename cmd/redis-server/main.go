package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/Avik32223/redis-lists/internal/config"
	"github.com/Avik32223/redis-lists/internal/logger"
	"github.com/Avik32223/redis-lists/internal/redis"
	"github.com/Avik32223/redis-lists/pkg/lists"
)

type options struct {
	Addr      string `long:"addr" description:"address to listen on. ex :6379"`
	Config    string `long:"config" description:"YAML configuration file"`
	ListKind  string `long:"list-kind" description:"kind of list backing list keys" choice:"linked" choice:"circular" choice:"double" choice:"circular-double"`
	ReadLimit int64  `long:"read-limit" description:"bytes per second read from each connection, 0 for unlimited"`
	Debug     bool   `long:"debug" description:"enable debug logging"`
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.ListKind != "" {
		kind, err := lists.ParseKind(opts.ListKind)
		if err != nil {
			return nil, err
		}
		cfg.ListKind = kind
	}
	if opts.ReadLimit != 0 {
		cfg.ReadLimit = opts.ReadLimit
	}
	cfg.Debug = cfg.Debug || opts.Debug
	return cfg, cfg.Validate()
}

func run(args []string) error {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return err
	}
	cfg, err := loadConfig(&opts)
	if err != nil {
		return err
	}
	logger.Setup(cfg.Debug)

	s := redis.NewServer(cfg)
	if err := s.Start(); err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigs:
		logger.Noticef("exiting on %s signal", sig)
	case <-s.Dead():
	}
	return s.Stop()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok {
			// already printed by the parser
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
