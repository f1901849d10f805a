// Package output builds termenv outputs with the color rules shared by the
// logger, the linear presenter and the interactive picker.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// NoColorEnv disables colors when set to any non-empty value.
const NoColorEnv = "NO_COLOR"

// ColorProfile returns Ascii when colors are disabled and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if Disabled() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns Ascii when colors are disabled and plain ANSI otherwise.
// It suits CI logs that understand the basic palette only.
func ColorProfileANSI() termenv.Profile {
	if Disabled() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Disabled reports whether the operator asked for colorless output.
func Disabled() bool {
	return os.Getenv(NoColorEnv) != ""
}

// New creates a termenv.Output on w using ColorProfile. A nil writer means stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output on w using the given profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
