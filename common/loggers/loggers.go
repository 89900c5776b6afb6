package loggers

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// LogCounters counts the ERROR and the WARN logs, each level on its own.
type LogCounters struct {
	ErrorCounter *jww.Counter
	WarnCounter  *jww.Counter
}

// Logger is the logger used during a site build.
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Debug() *log.Logger
	Debugf(format string, v ...any)
	Debugln(v ...any)
	Info() *log.Logger
	Infof(format string, v ...any)
	Infoln(v ...any)
	Warn() *log.Logger
	Warnf(format string, v ...any)
	Warnln(v ...any)
	Error() *log.Logger
	Errorf(format string, v ...any)
	Errorln(v ...any)

	Out() io.Writer

	LogCounters() *LogCounters

	Reset()
}

type logger struct {
	*jww.Notepad

	// The writer that represents stdout.
	// Will be ioutil.Discard when in quiet mode.
	out io.Writer

	logCounters *LogCounters
}

func (l *logger) Printf(format string, v ...any) {
	l.FEEDBACK.Printf(format, v...)
}

func (l *logger) Println(v ...any) {
	l.FEEDBACK.Println(v...)
}

func (l *logger) Debug() *log.Logger {
	return l.DEBUG
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Debugln(v ...any) {
	l.DEBUG.Println(v...)
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Infoln(v ...any) {
	l.INFO.Println(v...)
}

func (l *logger) Info() *log.Logger {
	return l.INFO
}

func (l *logger) Warnf(format string, v ...any) {
	l.WARN.Printf(format, v...)
}

func (l *logger) Warnln(v ...any) {
	l.WARN.Println(v...)
}

func (l *logger) Warn() *log.Logger {
	return l.WARN
}

func (l *logger) Errorf(format string, v ...any) {
	l.ERROR.Printf(format, v...)
}

func (l *logger) Errorln(v ...any) {
	l.ERROR.Println(v...)
}

func (l *logger) Error() *log.Logger {
	return l.ERROR
}

func (l *logger) LogCounters() *LogCounters {
	return l.logCounters
}

func (l *logger) Out() io.Writer {
	return l.out
}

// Reset resets the logger's internal state.
func (l *logger) Reset() {
	l.logCounters.ErrorCounter.Reset()
	l.logCounters.WarnCounter.Reset()
}

// ParseThreshold maps a level name to a jww threshold. Unknown names
// yield LevelWarn.
func ParseThreshold(level string) jww.Threshold {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return jww.LevelTrace
	case "debug":
		return jww.LevelDebug
	case "info":
		return jww.LevelInfo
	case "error":
		return jww.LevelError
	default:
		return jww.LevelWarn
	}
}

// NewWarningLogger is a convenience function to create a warning logger.
func NewWarningLogger() Logger {
	return NewBasicLogger(jww.LevelWarn)
}

// NewErrorLogger is a convenience function to create an error logger.
func NewErrorLogger() Logger {
	return NewBasicLogger(jww.LevelError)
}

// NewBasicLogger creates a new basic logger writing to Stdout.
func NewBasicLogger(t jww.Threshold) Logger {
	return newLogger(t, jww.LevelError, os.Stdout, io.Discard)
}

// NewBasicLoggerForWriter creates a new basic logger writing to w.
func NewBasicLoggerForWriter(t jww.Threshold, w io.Writer) Logger {
	return newLogger(t, jww.LevelError, w, io.Discard)
}

// NewDefault creates the logger used by the build command: feedback
// and the given threshold to stdout, nothing to a log file.
func NewDefault(level string, quiet bool) Logger {
	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}
	return newLogger(ParseThreshold(level), jww.LevelError, out, io.Discard)
}

func newLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) *logger {
	errorCounter := &jww.Counter{}
	warnCounter := &jww.Counter{}
	outHandle = addColor(outHandle)

	listeners := []jww.LogListener{levelCounter(errorCounter, jww.LevelError), levelCounter(warnCounter, jww.LevelWarn)}

	return &logger{
		Notepad: jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", log.Ldate|log.Ltime, listeners...),
		out:     outHandle,
		logCounters: &LogCounters{
			ErrorCounter: errorCounter,
			WarnCounter:  warnCounter,
		},
	}
}

// levelCounter counts the logs of exactly level t. jww.LogCounter counts
// t and everything above it.
func levelCounter(counter *jww.Counter, t jww.Threshold) jww.LogListener {
	return func(level jww.Threshold) io.Writer {
		if level != t {
			return nil
		}
		return counter
	}
}

// addColor wraps w so the level prefix is colored when w is a terminal.
func addColor(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return w
	}
	return &colorizer{w: w}
}

var levelColors = []struct {
	prefix []byte
	color  string
}{
	{[]byte("ERROR"), "\033[1;31m"},
	{[]byte("WARN"), "\033[0;33m"},
	{[]byte("INFO"), "\033[0;36m"},
}

type colorizer struct {
	w io.Writer
}

func (c *colorizer) Write(p []byte) (int, error) {
	for _, lc := range levelColors {
		if i := bytes.Index(p, lc.prefix); i != -1 {
			var b bytes.Buffer
			b.Write(p[:i])
			b.WriteString(lc.color)
			b.Write(lc.prefix)
			b.WriteString("\033[0m")
			b.Write(p[i+len(lc.prefix):])
			if _, err := c.w.Write(b.Bytes()); err != nil {
				return 0, err
			}
			return len(p), nil
		}
	}
	return c.w.Write(p)
}
