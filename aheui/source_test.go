package aheui

import "testing"

func syllableAt(t *testing.T, s *Source, row, col int) Syllable {
	t.Helper()
	syl, ok := s.Get(row, col).Syllable()
	if !ok {
		t.Fatalf("cell (%d,%d): got=no syllable, want=one", row, col)
	}
	return syl
}

func TestSource(t *testing.T) {
	s := NewSource("아희\n밯망희")
	if got := syllableAt(t, s, 0, 0).Rune(); got != '아' {
		t.Errorf("(0,0): got=%q, want=%q", got, '아')
	}
	if got := syllableAt(t, s, 0, 1).Rune(); got != '희' {
		t.Errorf("(0,1): got=%q, want=%q", got, '희')
	}
	if got := syllableAt(t, s, 1, 0).Rune(); got != '밯' {
		t.Errorf("(1,0): got=%q, want=%q", got, '밯')
	}
	if got := syllableAt(t, s, 1, 2).Rune(); got != '희' {
		t.Errorf("(1,2): got=%q, want=%q", got, '희')
	}
}

func TestSourcePadding(t *testing.T) {
	s := NewSource("아희")
	if got := len(s.cells); got != 5 {
		t.Fatalf("rows: got=%d, want=%d", got, 5)
	}
	tests := []struct {
		row, col  int
		dir       Direction
		magnitude int
	}{
		{0, 2, Up, 2},
		{1, 2, Up, 2},
		{2, 0, Left, 3},
		{2, 1, Left, 3},
		{2, 4, Right, 2}, // right of the row's last column
		{2, 9, Right, 2}, // and arbitrarily far right of it
		{3, 2, Down, 2},
		{4, 2, Down, 2},
	}
	for _, tc := range tests {
		inst := s.get(tc.row, tc.col)
		if inst.kind != cellWall {
			t.Fatalf("(%d,%d) kind: got=%d, want=%d", tc.row, tc.col, inst.kind, cellWall)
		}
		if inst.move.dir != tc.dir || inst.move.magnitude != tc.magnitude {
			t.Errorf("(%d,%d): got=(%v,%d), want=(%v,%d)",
				tc.row, tc.col, inst.move.dir, inst.move.magnitude, tc.dir, tc.magnitude)
		}
	}
}

// Rows keep their own width: the left wall of a short row wraps to that
// row's last column, not the grid's widest one.
func TestSourceRaggedRows(t *testing.T) {
	s := NewSource("아\n아희아희")
	short := s.get(2, 0)
	if short.move.magnitude != 2 {
		t.Errorf("short row left wall: got=%d, want=%d", short.move.magnitude, 2)
	}
	long := s.get(3, 0)
	if long.move.magnitude != 5 {
		t.Errorf("long row left wall: got=%d, want=%d", long.move.magnitude, 5)
	}
	if inst := s.get(2, 3); inst.kind != cellWall || inst.move.dir != Right {
		t.Errorf("short row right of end: got=%+v, want=a right wall", inst.move)
	}
}

func TestSourceEmpty(t *testing.T) {
	s := NewSource("")
	if got := len(s.cells); got != 5 {
		t.Fatalf("rows: got=%d, want=%d", got, 5)
	}
	if inst := s.Get(0, 0); inst.kind != cellWall {
		t.Errorf("(0,0) kind: got=%d, want=%d", inst.kind, cellWall)
	}
}

// A trailing newline produces a final empty row.
func TestSourceTrailingNewline(t *testing.T) {
	s := NewSource("아희\n")
	if got := len(s.cells); got != 6 {
		t.Fatalf("rows: got=%d, want=%d", got, 6)
	}
	if inst := s.Get(1, 0); inst.kind != cellWall || inst.move.dir != Right {
		t.Errorf("(1,0): got=%+v, want=a right wall", inst.move)
	}
	if inst := s.get(3, 0); inst.move.magnitude != 1 {
		t.Errorf("empty row left wall: got=%d, want=%d", inst.move.magnitude, 1)
	}
}
