package universe

import "fmt"

//RuleTable maps a neighbourhood pattern (left*4 + center*2 + right) to the next cell state.
//This is Wolfram's rule 110: 01101110 read from pattern 7 down to pattern 0
var RuleTable = [8]Cell{
	0: Dead, // 000
	1: Live, // 001
	2: Live, // 010
	3: Live, // 011
	4: Dead, // 100
	5: Live, // 101
	6: Live, // 110
	7: Dead, // 111
}

//Pattern encodes the neighbourhood as an integer 0-7
func Pattern(left, center, right Cell) uint8 {
	return uint8(left)<<2 | uint8(center)<<1 | uint8(right)
}

//Rule110 returns the next state of the cell with the given neighbourhood
func Rule110(left, center, right Cell) Cell {
	return RuleTable[Pattern(left, center, right)]
}

//Initialize creates generation 0: all cells are dead except the last one
func Initialize(size int) (Generation, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	g := make(Generation, size)
	g[size-1] = Live
	return g, nil
}

//Step computes the generation following prev
//prev is never modified, the result is always a newly allocated Generation
func Step(prev Generation) Generation {
	next := make(Generation, len(prev))
	StepInto(next, prev)
	return next
}

//StepInto writes the generation following prev to dst
//dst must have the same length as prev and must not share its backing array:
//every neighbour is read from prev, never from the partially written dst
func StepInto(dst, prev Generation) {
	size := len(prev)
	for i := 0; i < size; i++ {
		left, right := Dead, Dead
		if i > 0 {
			left = prev[i-1]
		}
		if i < size-1 {
			right = prev[i+1]
		}
		dst[i] = Rule110(left, prev[i], right)
	}
}

//LiveCells counts live cells in the generation
func (g Generation) LiveCells() (n int) {
	for _, c := range g {
		if c == Live {
			n++
		}
	}
	return
}

//Clone returns a copy of the generation
func (g Generation) Clone() Generation {
	c := make(Generation, len(g))
	copy(c, g)
	return c
}
