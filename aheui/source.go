package aheui

// Source is the program text parsed into a rectangular grid of pre-decoded
// instructions. The grid carries two wall rows above and below and two wall
// columns on the left; the right edge is covered per row by a shared wall
// sentinel so the step loop never bounds-checks.
type Source struct {
	cells [][]Instruction
}

// rightWallInstruction covers every cell to the right of a row's last real
// column. Rows keep their own length, so it cannot be stored in the grid.
var rightWallInstruction = newWallInstruction(Right, 2)

// NewSource parses program text. Newlines split rows; every other character
// becomes one cell.
func NewSource(text string) *Source {
	s := &Source{}
	s.parse(text)
	return s
}

func (s *Source) parse(text string) {
	rows := make([][]Instruction, 1)
	for _, r := range text {
		if r == '\n' {
			rows = append(rows, nil)
		} else {
			rows[len(rows)-1] = append(rows[len(rows)-1], NewInstruction(r))
		}
	}

	// Left walls wrap to each row's own last column, so their magnitude is
	// captured before padding.
	maxCols := 0
	rowCount := len(rows)
	for i, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
		left := newWallInstruction(Left, len(row)+1)
		rows[i] = append([]Instruction{left, left}, row...)
	}

	top := make([]Instruction, maxCols+2)
	bottom := make([]Instruction, maxCols+2)
	for i := range top {
		top[i] = newWallInstruction(Up, rowCount+1)
		bottom[i] = newWallInstruction(Down, 2)
	}
	s.cells = append(s.cells, top, top)
	s.cells = append(s.cells, rows...)
	s.cells = append(s.cells, bottom, bottom)
}

// get fetches a cell at padded coordinates. Anything right of a row's last
// column is the shared right wall.
func (s *Source) get(row, col int) Instruction {
	r := s.cells[row]
	if col >= len(r) {
		return rightWallInstruction
	}
	return r[col]
}

// Get fetches a cell at user-visible coordinates, where (0, 0) is the
// top-left character of the program text.
func (s *Source) Get(row, col int) Instruction {
	return s.get(row+2, col+2)
}
