package render

// Braille patterns pack a 2x4 dot block into one cell, giving the
// lissajous plot sub-cell resolution on a plain character grid.
// Dot layout:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var brailleDots = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	w, h int
	grid [][]rune
}

// newCanvas allocates a blank w x h cell canvas addressed in sub-pixel
// coordinates of (w*2) x (h*4) dots.
func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.w || row >= c.h {
		return
	}
	c.grid[row][col] |= brailleDots[y%4][x%2]
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for i, row := range c.grid {
		out[i] = string(row)
	}
	return out
}
