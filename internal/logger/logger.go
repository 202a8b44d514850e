// Package logger provides the process wide logger of the server.
//
// Nothing is written until Setup or SetLogger installs a logger; the
// package level Noticef and Debugf are safe to call from any goroutine.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"
)

// Level is the severity of a message.
type Level int

const (
	// LevelNotice messages are always shown.
	LevelNotice Level = iota
	// LevelDebug messages are shown only when debugging is enabled.
	LevelDebug
)

func (lv Level) String() string {
	switch lv {
	case LevelNotice:
		return "NOTICE"
	case LevelDebug:
		return "DEBUG"
	}
	return fmt.Sprintf("Level(%d)", int(lv))
}

// A Logger receives every formatted message along with its level.
type Logger interface {
	Log(lv Level, msg string)
}

// DebugEnv enables debug output of loggers created by New when set to a
// true value, whatever their options say.
const DebugEnv = "REDIS_LISTS_DEBUG"

// DefaultFlags are the log flags of loggers created by New.
const DefaultFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile

type nullLogger struct{}

func (nullLogger) Log(Level, string) {}

// NullLogger drops everything.
var NullLogger Logger = nullLogger{}

var (
	mu      sync.RWMutex
	current = NullLogger
)

// SetLogger installs l as the process wide logger.
func SetLogger(l Logger) {
	mu.Lock()
	current = l
	mu.Unlock()
}

func logf(lv Level, format string, v []any) {
	mu.RLock()
	l := current
	mu.RUnlock()
	l.Log(lv, fmt.Sprintf(format, v...))
}

// Noticef logs something the operator should see.
func Noticef(format string, v ...any) { logf(LevelNotice, format, v) }

// Debugf logs something useful when chasing a problem.
func Debugf(format string, v ...any) { logf(LevelDebug, format, v) }

// Log writes messages through a standard library log.Logger, dropping
// debug messages unless debugging is enabled.
type Log struct {
	out   *log.Logger
	debug bool
}

// Option configures a Log created by New.
type Option func(*Log)

// WithDebug enables debug messages.
func WithDebug(on bool) Option {
	return func(l *Log) { l.debug = l.debug || on }
}

// WithFlags replaces DefaultFlags.
func WithFlags(flag int) Option {
	return func(l *Log) { l.out.SetFlags(flag) }
}

// WithPrefix starts every line with prefix.
func WithPrefix(prefix string) Option {
	return func(l *Log) { l.out.SetPrefix(prefix) }
}

// New returns a Log writing to w.
func New(w io.Writer, opts ...Option) *Log {
	l := &Log{out: log.New(w, "", DefaultFlags)}
	l.debug, _ = strconv.ParseBool(os.Getenv(DebugEnv))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DebugEnabled reports whether l writes debug messages.
func (l *Log) DebugEnabled() bool { return l.debug }

// callDepth skips Log, logf and Noticef/Debugf so Lshortfile points at the
// caller of the package level helpers.
const callDepth = 4

func (l *Log) Log(lv Level, msg string) {
	switch lv {
	case LevelNotice:
		l.out.Output(callDepth, msg)
	case LevelDebug:
		if l.debug {
			l.out.Output(callDepth, lv.String()+": "+msg)
		}
	}
}

// Setup installs a logger writing to standard error.
func Setup(debug bool) {
	SetLogger(New(os.Stderr, WithDebug(debug)))
}

// MockLogger installs a debugging logger writing to the returned buffer
// until restore is called.
func MockLogger() (buf *bytes.Buffer, restore func()) {
	buf = &bytes.Buffer{}
	mu.RLock()
	old := current
	mu.RUnlock()
	SetLogger(New(buf, WithDebug(true)))
	return buf, func() { SetLogger(old) }
}
