package aheui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
)

// Interpreter walks the source grid one cell at a time, reading from and
// writing to a bank of 28 storages. An operation that cannot obtain its
// operands is not an error: it negates the pending movement and execution
// continues, so the core has no failure path at all.
type Interpreter struct {
	source       *Source
	storages     [FinalCount]*storage
	storageIndex int

	// counter holds padded grid coordinates; user-visible coordinates are
	// offset by the two wall rows and columns.
	counterRow int
	counterCol int
	direction  Direction
	// Last committed movement vector. The eu/i vowels reuse it to preserve
	// magnitude after a double step.
	moveRow int
	moveCol int

	in  *bufio.Reader
	out io.Writer
}

// NewInterpreter creates an interpreter over source, reading program input
// from in and writing program output to out.
func NewInterpreter(source *Source, in io.Reader, out io.Writer) *Interpreter {
	it := &Interpreter{
		source:     source,
		storages:   newStorageBank(),
		counterRow: 2,
		counterCol: 2,
		direction:  Down,
		moveRow:    1,
		moveCol:    0,
		in:         bufio.NewReader(in),
		out:        out,
	}
	return it
}

// Counter returns the program counter in user-visible coordinates.
func (it *Interpreter) Counter() (int, int) {
	return it.counterRow - 2, it.counterCol - 2
}

// Storage returns the currently selected storage.
func (it *Interpreter) Storage() Storage {
	return it.storages[it.storageIndex]
}

func (it *Interpreter) storage() *storage {
	return it.storages[it.storageIndex]
}

// readInt reads one line of program input and parses it as a signed decimal.
func (it *Interpreter) readInt() (int, bool) {
	line, err := it.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return v, true
}

// printChar writes the code point v. Values outside the valid scalar range
// report false.
func (it *Interpreter) printChar(v int) bool {
	if v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return false
	}
	fmt.Fprintf(it.out, "%c", rune(v))
	return true
}

// Instruct executes one instruction: the operation against the selected
// storage first, then the movement against the program counter. It reports
// true when the instruction halts the program.
func (it *Interpreter) Instruct(inst Instruction) bool {
	branch := false
	switch inst.op.kind {
	case opPushConst:
		it.storage().Put(inst.op.operand)
	case opAdd, opMul, opSub, opDiv, opMod:
		s := it.storage()
		if s.Len() < 2 {
			branch = true
			break
		}
		if inst.op.kind == opDiv || inst.op.kind == opMod {
			// The divisor is the value picked first; a zero refuses before
			// anything is popped.
			if d, _ := s.Peek(); d == 0 {
				branch = true
				break
			}
		}
		v1, _ := s.Pick()
		v2, _ := s.Pick()
		switch inst.op.kind {
		case opAdd:
			s.Put(v2 + v1)
		case opMul:
			s.Put(v2 * v1)
		case opSub:
			s.Put(v2 - v1)
		case opDiv:
			s.Put(v2 / v1)
		case opMod:
			s.Put(v2 % v1)
		}
	case opPushDup:
		s := it.storage()
		if v, ok := s.Peek(); ok {
			s.Put(v)
		} else {
			branch = true
		}
	case opSwap:
		if !it.storage().Swap() {
			branch = true
		}
	case opPop:
		if _, ok := it.storage().Pick(); !ok {
			branch = true
		}
	case opPrintInt:
		if v, ok := it.storage().Pick(); ok {
			fmt.Fprintf(it.out, "%d", v)
		} else {
			branch = true
		}
	case opPrintChar:
		if v, ok := it.storage().Pick(); ok {
			if !it.printChar(v) {
				branch = true
			}
		} else {
			branch = true
		}
	case opReadInt:
		if v, ok := it.readInt(); ok {
			it.storage().Put(v)
		} else {
			branch = true
		}
	case opReadChar:
		if r, _, err := it.in.ReadRune(); err == nil {
			it.storage().Put(int(r))
		} else {
			branch = true
		}
	case opSelectStorage:
		it.storageIndex = inst.op.operand
	case opMoveToStorage:
		if v, ok := it.storage().Pick(); ok {
			it.storageIndex = inst.op.operand
			it.storage().Put(v)
		} else {
			branch = true
		}
	case opCompare:
		s := it.storage()
		if s.Len() >= 2 {
			v1, _ := s.Pick()
			v2, _ := s.Pick()
			if v2 >= v1 {
				s.Put(1)
			} else {
				s.Put(0)
			}
		} else {
			branch = true
		}
	case opBranch:
		if v, ok := it.storage().Pick(); !ok || v == 0 {
			branch = true
		}
	case opHalt:
		return true
	case opNone:
	}

	dir := it.direction
	drow, dcol := it.moveRow, it.moveCol
	switch inst.move.kind {
	case moveRegular:
		dir, drow, dcol = inst.move.dir, inst.move.drow, inst.move.dcol
	case moveAllowHorizontal:
		switch it.direction {
		case Up:
			dir, drow, dcol = Down, 1, 0
		case Down:
			dir, drow, dcol = Up, -1, 0
		}
	case moveAllowVertical:
		switch it.direction {
		case Right:
			dir, drow, dcol = Left, 0, -1
		case Left:
			dir, drow, dcol = Right, 1, 0
		}
	case moveDisallow:
		dir = opposite(it.direction)
		drow, dcol = -drow, -dcol
	case moveKeep:
	case moveWall:
		// A wall wraps the counter only when hit head-on; hit from any other
		// direction (the right wall of a shorter row, reached moving up or
		// down) it keeps the current movement and the counter passes through.
		if it.direction == inst.move.dir {
			switch it.direction {
			case Up:
				it.counterRow = inst.move.magnitude + 1
			case Down:
				it.counterRow = inst.move.magnitude - 1
			case Right:
				it.counterCol = inst.move.magnitude - 1
			case Left:
				it.counterCol = inst.move.magnitude + 1
			}
		}
	}

	if branch {
		dir = opposite(dir)
		drow, dcol = -drow, -dcol
	}

	it.direction = dir
	it.counterRow += drow
	it.counterCol += dcol
	it.moveRow, it.moveCol = drow, dcol
	return false
}

// Step executes the cell under the program counter and reports whether the
// program halted.
func (it *Interpreter) Step() bool {
	inst := it.source.get(it.counterRow, it.counterCol)
	if glog.V(2) {
		row, col := it.Counter()
		glog.Infof("step: counter=(%d,%d), direction=%v, storage=%d, len=%d",
			row, col, it.direction, it.storageIndex, it.storage().Len())
	}
	return it.Instruct(inst)
}

// Execute runs the program until it halts.
func (it *Interpreter) Execute() {
	for !it.Step() {
	}
}
