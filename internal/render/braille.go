package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/muesli/termenv"

	"github.com/olivier-w/cord/internal/sim"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille is a terminal surface. Each cell is a 2x4 dot grid, giving 2x
// horizontal and 4x vertical resolution over a world of WorldW x WorldH.
type Braille struct {
	cols, rows     int
	worldW, worldH float64
	dots           []uint8
	tint           []string
	profile        termenv.Profile
}

// NewBraille creates a cols x rows surface covering the given world size.
func NewBraille(cols, rows int, worldW, worldH float64) *Braille {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Braille{
		cols:    cols,
		rows:    rows,
		worldW:  worldW,
		worldH:  worldH,
		dots:    make([]uint8, cols*rows),
		tint:    make([]string, cols*rows),
		profile: currentProfile(),
	}
}

// FitBraille picks the largest surface within maxCols x maxRows that keeps
// the world's aspect ratio, assuming braille dots are square.
func FitBraille(worldW, worldH float64, maxCols, maxRows int) *Braille {
	maxCols = max(maxCols, 1)
	maxRows = max(maxRows, 1)
	perUnit := math.Min(float64(maxCols*2)/worldW, float64(maxRows*4)/worldH)
	cols := int(math.Ceil(worldW * perUnit / 2))
	rows := int(math.Ceil(worldH * perUnit / 4))
	return NewBraille(min(cols, maxCols), min(rows, maxRows), worldW, worldH)
}

// SetProfile overrides the detected terminal colour profile.
func (b *Braille) SetProfile(p termenv.Profile) { b.profile = p }

// Size returns the surface size in cells.
func (b *Braille) Size() (cols, rows int) { return b.cols, b.rows }

// CellToWorld maps the centre of cell (col, row) to world coordinates.
func (b *Braille) CellToWorld(col, row int) sim.Vec {
	return sim.Vec{
		X: (float64(col) + 0.5) * b.worldW / float64(b.cols),
		Y: (float64(row) + 0.5) * b.worldH / float64(b.rows),
	}
}

func (b *Braille) toDot(v sim.Vec) (int, int) {
	dx := int(math.Floor(v.X / b.worldW * float64(b.cols*2)))
	dy := int(math.Floor(v.Y / b.worldH * float64(b.rows*4)))
	return dx, dy
}

func (b *Braille) set(dx, dy int, hex string) {
	if dx < 0 || dy < 0 || dx >= b.cols*2 || dy >= b.rows*4 {
		return
	}
	i := (dy/4)*b.cols + dx/2
	b.dots[i] |= 1 << brailleBits[dx%2][dy%4]
	b.tint[i] = hex
}

// Fill clears every dot. The terminal keeps its own background colour.
func (b *Braille) Fill(color.Color) {
	clear(b.dots)
	clear(b.tint)
}

// Polyline draws straight segments between consecutive points.
func (b *Braille) Polyline(pts []sim.Vec, c color.Color) {
	if len(pts) == 0 {
		return
	}
	hex := hexOf(c)
	x0, y0 := b.toDot(pts[0])
	b.set(x0, y0, hex)
	for _, p := range pts[1:] {
		x1, y1 := b.toDot(p)
		b.line(x0, y0, x1, y1, hex)
		x0, y0 = x1, y1
	}
}

func (b *Braille) line(x0, y0, x1, y1 int, hex string) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		b.set(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle fills the dots within r world units of center. The centre dot is
// always set so tiny markers stay visible.
func (b *Braille) Circle(center sim.Vec, r float64, c color.Color) {
	hex := hexOf(c)
	cx, cy := b.toDot(center)
	b.set(cx, cy, hex)

	rx := r / b.worldW * float64(b.cols*2)
	ry := r / b.worldH * float64(b.rows*4)
	if rx < 1 && ry < 1 {
		return
	}
	ix, iy := int(math.Ceil(rx)), int(math.Ceil(ry))
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx := float64(dx) / math.Max(rx, 1)
			ny := float64(dy) / math.Max(ry, 1)
			if nx*nx+ny*ny <= 1 {
				b.set(cx+dx, cy+dy, hex)
			}
		}
	}
}

// String renders the surface as rows of braille runes.
func (b *Braille) String() string {
	var out strings.Builder
	w := newANSIWriter(b.profile, &out)
	for row := range b.rows {
		if row > 0 {
			w.flush()
			out.WriteByte('\n')
		}
		for col := range b.cols {
			i := row*b.cols + col
			if b.dots[i] == 0 {
				w.write(' ', "")
				continue
			}
			w.write(rune(0x2800+int(b.dots[i])), b.tint[i])
		}
	}
	w.flush()
	return out.String()
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
