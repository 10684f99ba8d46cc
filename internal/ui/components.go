package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/olivier-w/cord/internal/sim"
)

// formatSimTime formats a simulated duration as m:ss.t.
func formatSimTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	m := tenths / 600
	s := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", m, s/10, s%10)
}

func renderRate(fps float64) string {
	return fmt.Sprintf("%.0f fps", fps)
}

// formatPositions lists one "x,y" pair per line in chain order.
func formatPositions(pts []sim.Vec) string {
	var b strings.Builder
	for _, p := range pts {
		fmt.Fprintf(&b, "%.3f,%.3f\n", p.X, p.Y)
	}
	return b.String()
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
