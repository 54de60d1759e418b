// Package mapflog provides a thin, explicit logger handle used throughout
// the solver. The reference implementation keeps a process-wide singleton
// (Logger::get()) guarded by a mutex; this package replaces that with a
// struct threaded through constructors, so nothing depends on global state.
package mapflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level identifies a log severity, mirroring the reference's LogLevel enum.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled, component-tagged messages to stdout (when verbose,
// or always for Error) and optionally mirrors them to a file. It is safe
// for concurrent use.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
	file    io.WriteCloser
}

// New constructs a Logger. verbose gates Debug/Info/Warn output to stdout;
// Error is always written to stdout regardless of verbose. If filePath is
// non-empty, messages are also appended to that file.
func New(verbose bool, filePath string) (*Logger, error) {
	l := &Logger{verbose: verbose, out: os.Stdout}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("mapflog: opening %q: %w", filePath, err)
		}
		l.file = f
	}

	return l, nil
}

// Close releases the file handle, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}

	return nil
}

// write formats and dispatches a single log line. name tags the emitting
// component, mirroring the reference's LOGGER(CLASSNAME) macro.
func (l *Logger) write(lvl Level, name, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s : %s\n", lvl, name, msg)
	if l.verbose || lvl == Error {
		fmt.Fprint(l.out, line)
	}
	if l.file != nil {
		fmt.Fprint(l.file, line)
	}
}

// Debug logs a debug-level message tagged with the given component name.
func (l *Logger) Debug(name, format string, args ...interface{}) {
	l.write(Debug, name, fmt.Sprintf(format, args...))
}

// Info logs an info-level message tagged with the given component name.
func (l *Logger) Info(name, format string, args ...interface{}) {
	l.write(Info, name, fmt.Sprintf(format, args...))
}

// Warn logs a warn-level message tagged with the given component name.
func (l *Logger) Warn(name, format string, args ...interface{}) {
	l.write(Warn, name, fmt.Sprintf(format, args...))
}

// Error logs an error-level message tagged with the given component name.
// Unlike the reference implementation, this never terminates the process:
// callers translate configuration errors into a returned error instead.
func (l *Logger) Error(name, format string, args ...interface{}) {
	l.write(Error, name, fmt.Sprintf(format, args...))
}

// InfoElapsed logs an info-level message with an appended elapsed-time
// suffix, mirroring the reference's timed log(lvl, name, msg, t) overload.
func (l *Logger) InfoElapsed(name, msg string, since time.Time) {
	l.write(Info, name, fmt.Sprintf("%s (%s)", msg, time.Since(since)))
}

// Nop returns a Logger that discards everything (verbose=false, no file).
// Useful as a default when a caller does not care about logging.
func Nop() *Logger {
	return &Logger{out: io.Discard}
}
