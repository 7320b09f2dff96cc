package microsat

import "github.com/sirupsen/logrus"

// log is the package-level structured logger used for solver and portfolio
// diagnostics (branch decisions at trace level, each portfolio worker's
// finish at debug level). It defaults to warn level so library use is
// silent unless a caller opts in.
var log = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

// SetLogLevel adjusts the verbosity of solver diagnostics. Callers that want
// the CLI's "-v" behavior call SetLogLevel(logrus.DebugLevel).
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
