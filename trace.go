package planar

import "github.com/charmbracelet/log"

// Logger, when set, receives debug traces from graph construction,
// intersection search and ring assembly. It is nil by default and the
// package stays silent.
var Logger *log.Logger

func tracef(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Debugf(format, args...)
	}
}
