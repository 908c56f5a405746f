package portal

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logg = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Logger returns the logger used for diagnostics of the data layer.
func Logger() *logrus.Logger { return logg }

// SetLogger replaces the diagnostics logger. A nil logger discards everything.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	logg = l
}
