package sim

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how point markers are coloured.
type ColorMode int

const (
	ColorPlain ColorMode = iota
	ColorHeat
)

// Next cycles to the next colour mode.
func (m ColorMode) Next() ColorMode {
	switch m {
	case ColorPlain:
		return ColorHeat
	default:
		return ColorPlain
	}
}

// String returns the name of the colour mode.
func (m ColorMode) String() string {
	switch m {
	case ColorHeat:
		return "heat"
	default:
		return "plain"
	}
}

// Palette holds the colours a Cord draws with.
type Palette struct {
	Background color.Color
	Line       color.Color
	Point      color.Color
	Anchor     color.Color
	Cold, Hot  colorful.Color
	Mode       ColorMode
}

// LightPalette draws black on white with green anchors.
func LightPalette() Palette {
	return Palette{
		Background: color.White,
		Line:       color.Black,
		Point:      color.Black,
		Anchor:     color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Cold:       mustHex("#1f4e9c"),
		Hot:        mustHex("#e8452c"),
	}
}

// DarkPalette is used on terminals with a dark background.
func DarkPalette() Palette {
	return Palette{
		Background: color.Black,
		Line:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Point:      color.RGBA{R: 235, G: 235, B: 235, A: 255},
		Anchor:     color.RGBA{R: 80, G: 250, B: 123, A: 255},
		Cold:       mustHex("#00aeff"),
		Hot:        mustHex("#ff503c"),
	}
}

// pointColor picks the marker colour for pt. In heat mode the colour moves
// from Cold to Hot as the point approaches the speed cap.
func (pl Palette) pointColor(pt *Point) color.Color {
	if pt.fixed {
		return pl.Anchor
	}
	if pl.Mode != ColorHeat {
		return pl.Point
	}
	t := pt.Speed() / pt.p.MaxSpeed
	if t > 1 {
		t = 1
	}
	return pl.Cold.BlendLab(pl.Hot, t).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
