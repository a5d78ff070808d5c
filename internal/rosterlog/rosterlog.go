// Package rosterlog is a structured, leveled logger in the shape of the
// teacher's pkg/logger: a thin wrapper over the standard log.Logger that
// formats "[timestamp] LEVEL [component] message key=value..." lines.
// It adds two things the batch pipeline needs that the teacher's daemon
// logger didn't: a run-scoped capture buffer that becomes
// diagnostics.logOutput, and a runID field stamped on every line.
package rosterlog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Level]*color.Color{
	LevelDebug: color.New(color.FgHiBlack),
	LevelInfo:  color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow, color.Bold),
	LevelError: color.New(color.FgRed, color.Bold),
}

// Logger is one solve's log sink: it writes to out (normally stderr,
// per §6) and also appends every line, newline-joined, to an internal
// buffer retrievable via Captured(). The buffer is the only
// process-wide mutable state the pipeline touches (§5), and a fresh
// Logger is created per run so it never leaks across invocations.
type Logger struct {
	out       io.Writer
	component string
	runID     string
	minLevel  Level
	color     bool

	mu      sync.Mutex
	lines   []string
}

// New creates a Logger for component, writing to out. color enables
// ANSI level coloring (the caller should pass isatty(out) through).
func New(out io.Writer, component string, color bool) *Logger {
	return &Logger{
		out:       out,
		component: component,
		runID:     uuid.NewString(),
		minLevel:  LevelInfo,
		color:     color,
	}
}

// RunID returns the UUID stamped on every line this logger emits.
func (l *Logger) RunID() string { return l.runID }

// SetLevel changes the minimum level that is emitted (Debug lines are
// otherwise suppressed).
func (l *Logger) SetLevel(level Level) { l.minLevel = level }

func (l *Logger) log(level Level, msg string, fields ...interface{}) {
	if level < l.minLevel {
		return
	}
	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s [%s] run=%s %s", ts, level.String(), l.component, l.runID, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	line := b.String()

	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()

	if l.color {
		if c, ok := levelColor[level]; ok {
			c.Fprintln(l.out, line)
			return
		}
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(LevelDebug, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(LevelInfo, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(LevelWarn, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(LevelError, msg, fields...) }

// Captured returns every line emitted so far, newline-joined, suitable
// for diagnostics.logOutput (§4.7). It does not include the CP-SAT
// engine's own search log, which is captured separately by
// solverbackend and merged in by the pipeline.
func (l *Logger) Captured() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
