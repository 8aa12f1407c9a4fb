package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/physics"
	"github.com/san-kum/galaxy/internal/viz"
)

const background = "#000000"

var classFill = map[physics.Class]string{
	physics.Light:  "#FFFFFF",
	physics.Medium: "#0000FF",
	physics.Heavy:  "#FF0000",
}

// SystemSVG draws every live particle of sys as a radius 2 circle on a
// size x size square, mapping the [-1,1] working area onto it.
func SystemSVG(sys *dynamo.System, size int) string {
	var sb strings.Builder
	header(&sb, float64(size), float64(size))

	if sys != nil {
		for _, p := range sys.Particles {
			if !p.Alive {
				continue
			}
			cx := (p.X + 1) / 2 * float64(size)
			cy := (p.Y + 1) / 2 * float64(size)
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="2" fill="%s"/>`+"\n",
				cx, cy, classFill[physics.Classify(p.Mass)])
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasSVG converts a braille canvas to SVG, one dot per lit sub-pixel,
// coloured by the class of its cell.
func CanvasSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	var sb strings.Builder
	header(&sb, float64(canvas.Width)*scale*2, float64(canvas.Height)*scale*4)

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := classFill[canvas.Class[row][col]]

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
						cx, cy, dotRadius, fill)
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSystem saves SystemSVG(sys, size) to path.
func WriteSystem(path string, sys *dynamo.System, size int) error {
	return os.WriteFile(path, []byte(SystemSVG(sys, size)), 0644)
}

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}
