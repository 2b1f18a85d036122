package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimum severity that is written to the log.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	errlog  *log.Logger
)

var output io.Writer = os.Stderr

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	errlog = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers with at least the given level.
func SetLevel(l Level) {
	loggers := []*log.Logger{debug, info, warning, errlog}
	for i, logger := range loggers {
		if Level(i) >= l {
			logger.SetOutput(output)
		} else {
			logger.SetOutput(io.Discard)
		}
	}
}

// SetOutput redirects all enabled loggers to w and sets the level.
func SetOutput(w io.Writer, l Level) {
	output = w
	SetLevel(l)
}

// ParseLevel converts a level name like "debug" or "warning" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "none", "off":
		return LevelNone, nil
	}
	return LevelNone, fmt.Errorf("unknown log level %q", s)
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errlog.Printf(msg, v...)
}
