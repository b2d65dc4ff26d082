package services

import (
	"fmt"
	"io"
)

// Logger is the logging contract the rest of the application depends on.
// Which implementation satisfies it is decided by the LoggerFactory from
// configuration, never by the callers.
type Logger interface {
	Log(message string)
}

// ── ConsoleLogger ─────────────────────────────────────────────────────────────

// ConsoleLogger writes log lines with a [console] prefix.
type ConsoleLogger struct {
	out io.Writer
}

func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out}
}

func (l *ConsoleLogger) Log(message string) {
	fmt.Fprintln(l.out, "[console]: "+message)
}

// ── FileLogger ────────────────────────────────────────────────────────────────

// FileLogger writes log lines with a [file] prefix.
type FileLogger struct {
	out io.Writer
}

func NewFileLogger(out io.Writer) *FileLogger {
	return &FileLogger{out: out}
}

func (l *FileLogger) Log(message string) {
	fmt.Fprintln(l.out, "[file]: "+message)
}

// ── CloudLogger ───────────────────────────────────────────────────────────────

// CloudLogger writes log lines with a [cloud] prefix.
type CloudLogger struct {
	out io.Writer
}

func NewCloudLogger(out io.Writer) *CloudLogger {
	return &CloudLogger{out: out}
}

func (l *CloudLogger) Log(message string) {
	fmt.Fprintln(l.out, "[cloud]: "+message)
}
