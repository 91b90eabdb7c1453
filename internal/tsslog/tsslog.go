// Package tsslog is the process-wide structured logger: a single named
// github.com/ipfs/go-log logger shared across packages rather than a
// per-package logger.
package tsslog

import (
	golog "github.com/ipfs/go-log"
)

const loggerName = "bigrsa"

// Log is the shared logger for the bruteforce and rsacipher packages.
var Log = golog.Logger(loggerName)

// SetLevel adjusts the logger's verbosity ("debug", "info", "warn",
// "error"). Panics if the level string is not recognized.
func SetLevel(level string) {
	if err := golog.SetLogLevel(loggerName, level); err != nil {
		panic(err)
	}
}
