package vqonsole

import "log"

// logger receives the package's absorbed, never-propagated
// diagnostics. Defaults to the standard logger; replaceable via
// SetLogger for embedders that route logs elsewhere.
var logger = log.Default()

// SetLogger redirects the package's diagnostics to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// logf emits a bracket-tagged diagnostic, matching the
// `log.Printf("[LEVEL] ...")` convention used throughout this package.
func logf(level, format string, args ...any) {
	logger.Printf("["+level+"] "+format, args...)
}
