package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

var currLevel = LevelInfo

var backend = logrus.New()

var rootLogger = &logrusLogger{
	entry: logrus.NewEntry(backend),
}

func SetLevel(level Level) {
	currLevel = level
	backend.SetLevel(level.logrus())
}

// SetOutput redirects all loggers. The CLI sends logs to stderr so that
// stdout stays clean for command output.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	backend.SetOutput(os.Stderr)
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	} else {
		SetLevel(currLevel)
	}
}
