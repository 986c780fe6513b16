package driver

import (
	"log"
	"os"
)

// diagLogger is the package-level diagnostic logger. The teacher's
// internal/git package logs recoverable problems straight to log.Printf
// ("warning: failed to delete remote branch %s: %v"); we follow the
// same texture but gate it on the configured log level instead of
// always printing.
var diagLogger = log.New(os.Stderr, "", 0)

var logLevel = "info"

// SetLogLevel configures how much diagnostic chatter warnf/debugf emit.
// Valid levels are "silent", "info" and "verbose"; any other value is
// treated as "info".
func SetLogLevel(level string) {
	switch level {
	case "silent", "verbose":
		logLevel = level
	default:
		logLevel = "info"
	}
}

// warnf logs a warning about a recoverable problem. Suppressed at the
// silent log level.
func warnf(format string, args ...any) {
	if logLevel == "silent" {
		return
	}
	diagLogger.Printf("warning: "+format, args...)
}

// debugf logs extra diagnostic detail, shown only at the verbose log
// level.
func debugf(format string, args ...any) {
	if logLevel != "verbose" {
		return
	}
	diagLogger.Printf(format, args...)
}
