package gonpp

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called while other goroutines issue NPP calls.
var loggerPtr atomic.Pointer[logrus.FieldLogger]

func init() {
	SetLogger(nil)
}

func newNopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used for every native call. By default
// gonpp produces no output. Pass nil to restore the silent default.
//
// Levels used:
//   - debug: every native call with its symbol and returned status
//   - warn: calls that completed with an NPP warning status
//
// Example:
//
//	l := logrus.New()
//	l.SetLevel(logrus.DebugLevel)
//	gonpp.SetLogger(l)
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(&l)
}

// Logger returns the logger currently in use.
func Logger() logrus.FieldLogger {
	return *loggerPtr.Load()
}

func logCall(fn string, s Status) {
	entry := Logger().WithFields(logrus.Fields{"func": fn, "status": int(s)})
	switch {
	case s.IsWarning():
		entry.Warnf("%s completed with %s", fn, s)
	case s.IsError():
		entry.Debugf("%s failed with %s", fn, s)
	default:
		entry.Debug(fn)
	}
}
