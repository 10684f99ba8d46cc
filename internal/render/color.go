package render

import (
	"image/color"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	profileOnce sync.Once
	profile     termenv.Profile
)

// currentProfile detects the terminal colour support once per process.
func currentProfile() termenv.Profile {
	profileOnce.Do(func() {
		profile = termenv.EnvColorProfile()
	})
	return profile
}

// hexOf converts c to "#rrggbb". Fully transparent colours map to "".
func hexOf(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}

// ansiWriter batches runs of equally coloured runes into one styled span.
type ansiWriter struct {
	profile termenv.Profile
	out     *strings.Builder
	run     strings.Builder
	hex     string
}

func newANSIWriter(p termenv.Profile, out *strings.Builder) *ansiWriter {
	return &ansiWriter{profile: p, out: out}
}

func (w *ansiWriter) write(r rune, hex string) {
	if hex != w.hex {
		w.flush()
		w.hex = hex
	}
	w.run.WriteRune(r)
}

func (w *ansiWriter) flush() {
	if w.run.Len() == 0 {
		return
	}
	s := w.run.String()
	w.run.Reset()
	if w.hex == "" || w.profile == termenv.Ascii {
		w.out.WriteString(s)
		return
	}
	w.out.WriteString(w.profile.String(s).Foreground(w.profile.Color(w.hex)).String())
}
