package veb

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// loggerBox holds the package-wide diagnostic sink. It defaults to a disabled
// logger so that importing this package produces no output unless a
// caller explicitly opts in with SetLogger, mirroring the zero-cost
// default of a zerolog.Nop() logger.
var loggerBox atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	loggerBox.Store(&nop)
}

// logger is a convenience accessor used throughout the package instead
// of threading a zerolog.Logger through every call.
var logger = loggerProxy{}

type loggerProxy struct{}

func (loggerProxy) Error() *zerolog.Event { return loggerBox.Load().Error() }

// SetLogger redirects diagnostic logging (contract and invariant
// violations) to l. Passing zerolog.Nop() restores the silent default.
func SetLogger(l zerolog.Logger) {
	loggerBox.Store(&l)
}
