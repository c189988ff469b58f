// Package logging is a small leveled logger writing to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var levelPrefix = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

func init() { currentLevel.Store(int32(LevelInfo)) }

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (debug|info|warn|error)", s)
	}
	return l, nil
}

// SetLogLevel parses and sets the global level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, err := ParseLevel(s)
	if err != nil {
		return
	}
	currentLevel.Store(int32(l))
}

// GetLogLevel returns the current global level.
func GetLogLevel() Level { return Level(currentLevel.Load()) }

// SetOutput redirects log lines, mainly for tests.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l Level, format string, args ...any) {
	if GetLogLevel() > l {
		return
	}
	// A message without args is printed verbatim so literal % signs in file
	// names survive.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", levelPrefix[l], format)
		return
	}
	baseLogger.Printf("[%s] %s", levelPrefix[l], fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...any) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
// Usage: defer logging.TimeTrack(time.Now(), "load")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
