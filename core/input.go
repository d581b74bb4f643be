package core

import "math"

// Input is the per-frame snapshot of player intent
// Frontends fill it between frames; the simulation reads it once per update
type Input struct {
	Up, Right, Down, Left bool
	Fire                  bool
	Quit                  bool
	Pause                 bool // Edge-triggered toggle
	Restart               bool // Edge-triggered, only honored after a match ends
}

// Direction is one of the eight compass directions or none
type Direction uint8

const (
	DirNone Direction = iota
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// Diagonal is the per-axis component of a unit diagonal step
const Diagonal = 1 / math.Sqrt2

// directionTable maps the 16 up/right/down/left combinations, indexed as
// up|right<<1|down<<2|left<<3, to a direction. Opposing flags cancel per axis
var directionTable [16]Direction

func init() {
	for i := range directionTable {
		up := i&1 != 0
		right := i&2 != 0
		down := i&4 != 0
		left := i&8 != 0

		dx, dy := 0, 0
		if right {
			dx++
		}
		if left {
			dx--
		}
		if down {
			dy++
		}
		if up {
			dy--
		}
		directionTable[i] = fromSteps(dx, dy)
	}
}

func fromSteps(dx, dy int) Direction {
	switch {
	case dx == 0 && dy < 0:
		return DirN
	case dx > 0 && dy < 0:
		return DirNE
	case dx > 0 && dy == 0:
		return DirE
	case dx > 0 && dy > 0:
		return DirSE
	case dx == 0 && dy > 0:
		return DirS
	case dx < 0 && dy > 0:
		return DirSW
	case dx < 0 && dy == 0:
		return DirW
	case dx < 0 && dy < 0:
		return DirNW
	}
	return DirNone
}

// DirectionFrom resolves the directional flags of an input snapshot
func DirectionFrom(in Input) Direction {
	idx := 0
	if in.Up {
		idx |= 1
	}
	if in.Right {
		idx |= 2
	}
	if in.Down {
		idx |= 4
	}
	if in.Left {
		idx |= 8
	}
	return directionTable[idx]
}

// Vector returns the unit step for the direction in screen space (y grows downward)
// Diagonals are scaled so their length equals an axis step
func (d Direction) Vector() (float64, float64) {
	switch d {
	case DirN:
		return 0, -1
	case DirNE:
		return Diagonal, -Diagonal
	case DirE:
		return 1, 0
	case DirSE:
		return Diagonal, Diagonal
	case DirS:
		return 0, 1
	case DirSW:
		return -Diagonal, Diagonal
	case DirW:
		return -1, 0
	case DirNW:
		return -Diagonal, -Diagonal
	}
	return 0, 0
}
