package obs

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

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

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug, nil
	case "INFO", "":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	}
	return Info, fmt.Errorf("obs: unknown log level %q", s)
}

// Logger emits one structured line per call. kv is a flat list of
// alternating keys and values.
type Logger interface {
	Log(level Level, msg string, kv ...any)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Log(level Level, msg string, kv ...any) {}

// StdLogger writes logfmt-style lines through a standard library logger:
//
//	level=WARN msg="unknown method" token=BREW
type StdLogger struct {
	L   *log.Logger
	Min Level
}

func (s StdLogger) Log(level Level, msg string, kv ...any) {
	if s.L == nil || level < s.Min {
		return
	}
	s.L.Print(Format(level, msg, kv...))
}

// Format renders a log line without emitting it. A trailing key with no
// value is paired with "(MISSING)".
func Format(level Level, msg string, kv ...any) string {
	var sb strings.Builder
	sb.WriteString("level=")
	sb.WriteString(level.String())
	sb.WriteString(" msg=")
	sb.WriteString(quoteIfNeeded(msg))
	for i := 0; i < len(kv); i += 2 {
		sb.WriteByte(' ')
		sb.WriteString(fmt.Sprint(kv[i]))
		sb.WriteByte('=')
		if i+1 < len(kv) {
			sb.WriteString(quoteIfNeeded(fmt.Sprint(kv[i+1])))
		} else {
			sb.WriteString("(MISSING)")
		}
	}
	return sb.String()
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\r\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
