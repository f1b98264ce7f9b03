package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink performs the actual write for one call. Values are printed the way
// fmt.Println prints them.
type Sink func(args ...any)

// Printf formats according to a format specifier and passes the result to
// the sink as a single value.
func (s Sink) Printf(format string, args ...any) {
	s(fmt.Sprintf(format, args...))
}

func noop(...any) {}

// Console holds the platform output functions: one per routed level plus
// Log, the generic unformatted one used by Raw.
type Console struct {
	Debug Sink
	Info  Sink
	Warn  Sink
	Error Sink
	Log   Sink

	// stdout is kept for color detection.
	stdout io.Writer
	mu     sync.Mutex
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// DefaultConsole writes debug, info and raw output to stdout and warnings
// and errors to stderr.
func DefaultConsole() *Console {
	return NewConsole(outStdout, outStderr)
}

// NewConsole returns a console writing debug, info and raw output to stdout
// and warn and error output to stderr. Each call writes one line. When
// JOURNAL_STREAM is set the filtered levels get a journald priority prefix.
// Writes are serialized, so a Console is safe for concurrent use.
func NewConsole(stdout, stderr io.Writer) *Console {
	c := &Console{stdout: stdout}
	c.Debug = c.writer(stdout, "<7>")
	c.Info = c.writer(stdout, "<6>")
	c.Warn = c.writer(stderr, "<4>")
	c.Error = c.writer(stderr, "<3>")
	c.Log = c.writer(stdout, "")
	return c
}

func (c *Console) writer(out io.Writer, priority string) Sink {
	if priority != "" && shouldUseSyslogPrefix() {
		out = &syslogPrefixWriter{w: out, prefix: priority}
	}
	return func(args ...any) {
		c.mu.Lock()
		defer c.mu.Unlock()
		_, _ = fmt.Fprintln(out, args...)
	}
}

// sinkFor returns the output function for a routed level.
func (c *Console) sinkFor(l Level) Sink {
	var s Sink
	switch filterLevel(l) {
	case LevelDebug:
		s = c.Debug
	case LevelInfo:
		s = c.Info
	case LevelWarn:
		s = c.Warn
	case LevelError:
		s = c.Error
	}
	if s == nil {
		return noop
	}
	return s
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
