package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// Color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
	ColorRed    = "\033[31m"
)

type LogLevel string

var (
	GlobalLogLevel LogLevel = LogLevelInfo
	output         io.Writer = os.Stdout
	colored                  = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) rank() int {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug:
		return 0
	case LogLevelWarn:
		return 2
	case LogLevelError:
		return 3
	default:
		return 1
	}
}

// SetOutput redirects every logger. Colors are only kept for terminals.
func SetOutput(w io.Writer) {
	output = w
	colored = false
	if f, ok := w.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd())
	}
}

type Log struct {
	level LogLevel
	err   error
}

func New() *Log {
	return &Log{
		level: GlobalLogLevel,
	}
}

func (l *Log) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Log) WithError(err error) *Log {
	return &Log{level: l.level, err: err}
}

func (l *Log) timestamp() string {
	return time.Now().Format("15:04:05")
}

func (l *Log) enabled(level LogLevel) bool {
	return level.rank() >= l.level.rank()
}

func paint(color string) string {
	if !colored {
		return ""
	}
	return color
}

func (l *Log) print(color, icon, msg string) {
	if l.err != nil {
		fmt.Fprintf(output, "%s[%s]%s %s %s: %v%s\n", paint(color), l.timestamp(), paint(ColorReset), icon, msg, l.err, paint(ColorReset))
		return
	}
	fmt.Fprintf(output, "%s[%s]%s %s %s%s\n", paint(color), l.timestamp(), paint(ColorReset), icon, msg, paint(ColorReset))
}

func (l *Log) Debug(msg string) {
	if !l.enabled(LogLevelDebug) {
		return
	}
	l.print(ColorCyan, "🔎", msg)
}

func (l *Log) Info(msg string) {
	if !l.enabled(LogLevelInfo) {
		return
	}
	l.print(ColorBlue, "ℹ️ ", msg)
}

// Case tags a line with the case it belongs to.
func (l *Log) Case(title, msg string) {
	if !l.enabled(LogLevelInfo) {
		return
	}

	fmt.Fprintf(output, "%s[%s]%s [%s] %s%s\n", paint(ColorBlue), l.timestamp(), paint(ColorBold), title, msg, paint(ColorReset))
}

func (l *Log) Warn(msg string) {
	if !l.enabled(LogLevelWarn) {
		return
	}
	l.print(ColorYellow, "⚠️ ", msg)
}

func (l *Log) Error(msg string) {
	l.print(ColorRed, "❌", msg)
}
