package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/springbox/internal/world"
)

// TrajectorySVG renders a recorded run as an SVG: the room outline of the
// final frame plus the ball's path through it. Coordinates are
// room-centered y-up and get flipped into SVG's y-down space.
func TrajectorySVG(frames []world.State) string {
	if len(frames) < 2 {
		return ""
	}

	last := frames[len(frames)-1].Room
	width := last.W + 2*last.Wall
	height := last.H + 2*last.Wall
	if width <= 0 || height <= 0 {
		return ""
	}

	toX := func(x float64) float64 { return x + width/2 }
	toY := func(y float64) float64 { return height/2 - y }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Room outline, stroke centered on the interior boundary.
	sb.WriteString(fmt.Sprintf(
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#b4b4b4" stroke-width="%.1f"/>
`,
		toX(-(last.W+last.Wall)/2), toY((last.H+last.Wall)/2),
		last.W+last.Wall, last.H+last.Wall, last.Wall))

	sb.WriteString(`<path fill="none" stroke="#ffffff" stroke-width="1.5" d="M`)
	for i, fr := range frames {
		x := toX(fr.Ball.Pos.X)
		y := toY(fr.Ball.Pos.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	// Final ball position.
	fb := frames[len(frames)-1].Ball
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#ffffff"/>
</svg>`, toX(fb.Pos.X), toY(fb.Pos.Y), fb.Radius))

	return sb.String()
}
