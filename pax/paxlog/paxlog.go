// Package paxlog ports the teacher corpus's config-gated structured debug
// logging idiom to zerolog: low-allocation, leveled, and silent unless a
// caller opts in, matching the embedded/real-time logging style used
// throughout the wider example corpus.
package paxlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is PAX's package-wide logger, defaulting to "disabled" so the
// rasterizer stays silent (and allocation-free on the log path) unless a
// host application opts in via SetOutput/EnableStderr.
var Logger = zerolog.New(io.Discard).With().Timestamp().Logger()

// SetOutput redirects PAX's log output, e.g. to os.Stderr during
// debugging.
func SetOutput(w io.Writer) {
	Logger = zerolog.New(w).With().Timestamp().Logger()
}

// EnableStderr is a convenience for SetOutput(os.Stderr) at debug level,
// mirroring the teacher's "just turn logging on for this demo" helper.
func EnableStderr() {
	SetOutput(os.Stderr)
	Logger = Logger.Level(zerolog.DebugLevel)
}

// BoundsViolation logs and aborts the process, the debug-build fatal path
// spec.md §7 requires for out-of-bounds pixel getter/setter access.
// Release builds should not call this (paxconfig.BoundsCheck gates it).
func BoundsViolation(index, width, height int) {
	Logger.Fatal().Int("index", index).Int("width", width).Int("height", height).
		Msg("frame buffer access out of bounds")
}
