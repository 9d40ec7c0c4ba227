// Package logging holds the process-wide zerolog logger used by iterlib.
//
// The logger starts out as zerolog.Nop(); install a real one with
// SetGlobalLogger to see debug events about degenerate arguments.
package logging

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
}

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }
