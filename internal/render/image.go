package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/olivier-w/cord/internal/sim"
)

// Image is an anti-aliased raster surface backed by a gg context.
// World coordinates are multiplied by scale to get pixels.
type Image struct {
	dc    *gg.Context
	scale float64
}

// NewImage creates a surface for a worldW x worldH world.
func NewImage(worldW, worldH, scale float64) *Image {
	if scale <= 0 {
		scale = 1
	}
	w := max(int(worldW*scale), 1)
	h := max(int(worldH*scale), 1)
	return &Image{dc: gg.NewContext(w, h), scale: scale}
}

func (im *Image) Fill(c color.Color) {
	im.dc.SetColor(c)
	im.dc.Clear()
}

func (im *Image) Polyline(pts []sim.Vec, c color.Color) {
	if len(pts) < 2 {
		return
	}
	im.dc.SetColor(c)
	im.dc.SetLineWidth(1)
	im.dc.MoveTo(pts[0].X*im.scale, pts[0].Y*im.scale)
	for _, p := range pts[1:] {
		im.dc.LineTo(p.X*im.scale, p.Y*im.scale)
	}
	im.dc.Stroke()
}

func (im *Image) Circle(center sim.Vec, r float64, c color.Color) {
	im.dc.SetColor(c)
	im.dc.DrawCircle(center.X*im.scale, center.Y*im.scale, r*im.scale)
	im.dc.Fill()
}

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func captionFace() (font.Face, error) {
	faceOnce.Do(func() {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			faceErr = fmt.Errorf("parse font: %w", err)
			return
		}
		face = truetype.NewFace(ttf, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Caption writes text in the top-left corner.
func (im *Image) Caption(text string, c color.Color) error {
	f, err := captionFace()
	if err != nil {
		return err
	}
	im.dc.SetFontFace(f)
	im.dc.SetColor(c)
	im.dc.DrawString(text, 6, 16)
	return nil
}

// Image returns the rendered raster.
func (im *Image) Image() image.Image { return im.dc.Image() }

// EncodePNG writes the raster as PNG.
func (im *Image) EncodePNG(w io.Writer) error { return im.dc.EncodePNG(w) }

// Snapshot renders c onto a fresh image with the palette background and an
// optional caption.
func Snapshot(c *sim.Cord, worldW, worldH, scale float64, caption string) (*Image, error) {
	im := NewImage(worldW, worldH, scale)
	im.Fill(c.Palette.Background)
	c.Draw(im)
	if caption != "" {
		if err := im.Caption(caption, c.Palette.Line); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// SavePNG renders c and writes it to path.
func SavePNG(c *sim.Cord, path string, worldW, worldH, scale float64, caption string) error {
	im, err := Snapshot(c, worldW, worldH, scale, caption)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := im.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// SnapshotPath returns dir/cord-<frame>.png, creating dir if needed. It
// refuses to overwrite an existing file.
func SnapshotPath(dir string, frame int) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("cord-%06d.png", frame))
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("file %q already exists", path)
	}
	return path, nil
}
