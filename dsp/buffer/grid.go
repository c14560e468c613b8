package buffer

// Grid is a rows×width float32 matrix with one contiguous backing array.
type Grid struct {
	data  []float32
	rows  [][]float32
	width int
}

// NewGrid returns a zero-filled Grid. Negative dimensions are treated as 0.
func NewGrid(rows, width int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if width < 0 {
		width = 0
	}
	g := &Grid{
		data:  make([]float32, rows*width),
		rows:  make([][]float32, rows),
		width: width,
	}
	for r := range g.rows {
		// Full slice expression keeps appends on one row from spilling into the next.
		g.rows[r] = g.data[r*width : (r+1)*width : (r+1)*width]
	}
	return g
}

// Rows returns one slice per row. The slices alias the grid storage.
func (g *Grid) Rows() [][]float32 {
	return g.rows
}

// Row returns row r.
func (g *Grid) Row(r int) []float32 {
	return g.rows[r]
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of every row.
func (g *Grid) Width() int {
	return g.width
}

// Zero sets every cell to 0.
func (g *Grid) Zero() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	c := NewGrid(len(g.rows), g.width)
	copy(c.data, g.data)
	return c
}
