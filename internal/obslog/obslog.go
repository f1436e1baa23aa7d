// Package obslog builds the process-wide structured logger used for
// every diagnostic outside the signal-handling path, which must stay
// async-signal safe and so never touches this package (see
// internal/sigpolicy).
package obslog

import (
	"os"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"

	"github.com/joeycumines/commsplit/internal/flags"
)

// Event is the concrete logiface event type used throughout commsplit.
type Event = izerolog.Event

var root = newLogger()

func newLogger() *logiface.Logger[*Event] {
	level := logiface.LevelInformational
	if flags.DebugEnabled() {
		level = logiface.LevelDebug
	}
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return logiface.New[*Event](
		izerolog.WithZerolog(zl),
		logiface.WithLevel[*Event](level),
	)
}

// Logger returns the process-wide logger.
func Logger() *logiface.Logger[*Event] {
	return root
}

// Fatal logs a fatal diagnostic at Err level, tagged with the rank,
// color and originating component, matching the original's always-on
// EXIT_PRINT diagnostic path.
func Fatal(component string, rank, color int, err error) {
	root.Err().
		Str("component", component).
		Int("rank", rank).
		Int("color", color).
		Err(err).
		Log("fatal error")
}

// Trace logs the verbose, opt-in narration of the split/shape/signal
// install sequence (cf. the original's DEBUG-gated DEBUG_PRINT macro).
// It is a no-op when COMMSPLIT_DEBUG is unset, since the level filter
// on the underlying logger already drops it, but the explicit check
// avoids formatting fields nobody will read.
func Trace(component string, rank, color int, msg string) {
	if !flags.DebugEnabled() {
		return
	}
	root.Debug().
		Str("component", component).
		Int("rank", rank).
		Int("color", color).
		Log(msg)
}
