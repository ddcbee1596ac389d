package utils

import (
	"github.com/sirupsen/logrus"
)

// SetVerbose switches the process-wide log level between Info and
// Debug.
func SetVerbose(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Verbose logs a debug-level message, visible only after
// SetVerbose(true).
func Verbose(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
