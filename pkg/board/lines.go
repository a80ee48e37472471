package board

// Lines holds the indices of full rows and columns, each ascending.
type Lines struct {
	Rows    []int
	Columns []int
}

// Count returns the total number of lines.
func (l Lines) Count() int { return len(l.Rows) + len(l.Columns) }

// Empty reports whether no line is listed.
func (l Lines) Empty() bool { return l.Count() == 0 }

// DetectFullLines returns every row and column whose cells are all occupied.
func (b *Board) DetectFullLines() Lines {
	var l Lines
	for y := range b.size {
		if b.rowFull(y) {
			l.Rows = append(l.Rows, y)
		}
	}
	for x := range b.size {
		if b.columnFull(x) {
			l.Columns = append(l.Columns, x)
		}
	}
	return l
}

func (b *Board) rowFull(y int) bool {
	for x := range b.size {
		if b.cells[b.index(x, y)] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) columnFull(x int) bool {
	for y := range b.size {
		if b.cells[b.index(x, y)] == Empty {
			return false
		}
	}
	return true
}

// ClearLines empties every cell in the listed rows and columns. Indices
// outside the board are ignored.
func (b *Board) ClearLines(l Lines) {
	for _, y := range l.Rows {
		if y < 0 || y >= b.size {
			continue
		}
		for x := range b.size {
			b.cells[b.index(x, y)] = Empty
		}
	}
	for _, x := range l.Columns {
		if x < 0 || x >= b.size {
			continue
		}
		for y := range b.size {
			b.cells[b.index(x, y)] = Empty
		}
	}
}
