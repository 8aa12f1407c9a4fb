package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/galaxy/internal/dynamo"
	"github.com/san-kum/galaxy/internal/physics"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille render target for the [-1,1] working area. Each cell
// remembers the heaviest class drawn into it and is coloured by that class.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Class         [][]physics.Class
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid to w x h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Class = make([][]physics.Class, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Class[i] = make([]physics.Class, w)
	}
	c.Clear()
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Class[i][j] = physics.Light
		}
	}
}

// Project maps working-area coordinates onto sub-pixels. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Project(x, y float64) (int, int) {
	px := math.Floor((x + 1) / 2 * float64(c.Width*2))
	py := math.Floor((y + 1) / 2 * float64(c.Height*4))
	return int(px), int(py)
}

func (c *Canvas) DrawParticle(p dynamo.Particle) {
	x, y := c.Project(p.X, p.Y)
	c.Set(x, y, physics.Classify(p.Mass))
}

// Set lights the sub-pixel at (x, y). Points off the canvas are dropped.
func (c *Canvas) Set(x, y int, class physics.Class) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if class > c.Class[row][col] {
		c.Class[row][col] = class
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of same-class cells styled in its
// particle colour.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Class[i][j] == c.Class[i][start] {
				continue
			}
			b.WriteString(classStyles[c.Class[i][start]].Render(string(row[start:j])))
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParticleColor is the display colour of a mass class.
func ParticleColor(class physics.Class) lipgloss.Color {
	switch class {
	case physics.Medium:
		return lipgloss.Color("#0000FF")
	case physics.Heavy:
		return lipgloss.Color("#FF0000")
	}
	return lipgloss.Color("#FFFFFF")
}

var classStyles = map[physics.Class]lipgloss.Style{
	physics.Light:  lipgloss.NewStyle().Foreground(ParticleColor(physics.Light)),
	physics.Medium: lipgloss.NewStyle().Foreground(ParticleColor(physics.Medium)),
	physics.Heavy:  lipgloss.NewStyle().Foreground(ParticleColor(physics.Heavy)),
}
