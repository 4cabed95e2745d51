package logging

import (
	"fmt"
	"log"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any flags set
// for that logger. It is safe for concurrent usage, though its level should
// be set before it is shared.
type Logger struct {
	// level is the maximum level at which the logger will emit output.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
}

// NewLogger creates a new logger that emits output at or below the specified
// level.
func NewLogger(level Level) *Logger {
	return &Logger{level: level}
}

// RootLogger is the root logger from which all other loggers derive. It
// defaults to logging warnings and errors only.
var RootLogger = &Logger{level: LevelWarn}

// SetLevel adjusts the level of the logger. It is not safe to call
// concurrently with logging operations, so it should be invoked during
// program initialization.
func (l *Logger) SetLevel(level Level) {
	if l != nil {
		l.level = level
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
	}
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	log.Output(calldepth, line)
}

// emits indicates whether or not the logger will emit output at the
// specified level.
func (l *Logger) emits(level Level) bool {
	return l != nil && level <= l.level
}

// Errorf logs error information with an error prefix and red color, with
// semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.emits(LevelError) {
		l.output(3, color.RedString("Error: %s", fmt.Sprintf(format, v...)))
	}
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l.emits(LevelError) {
		l.output(3, color.RedString("Error: %v", err))
	}
}

// Warnf logs warning information with a warning prefix and yellow color,
// with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.emits(LevelWarn) {
		l.output(3, color.YellowString("Warning: %s", fmt.Sprintf(format, v...)))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.emits(LevelWarn) {
		l.output(3, color.YellowString("Warning: %v", err))
	}
}

// Infof logs basic execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.emits(LevelInfo) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debugf logs advanced execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.emits(LevelDebug) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.emits(LevelTrace) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}
