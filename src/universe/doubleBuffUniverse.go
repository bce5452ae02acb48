package universe

/*
	Universe implementation with two buffers
	The next generation is calculated into the spare buffer, then the buffers are swapped.
	No allocations after the construction
*/
type DoubleBuffUniverse struct {
	*BaseUniverse
	tmpBuff Generation
}

func NewDoubleBuffUniverse(o *Options) (Universe, error) {
	bu, err := NewBaseUniverse(o)
	if err != nil {
		return nil, err
	}
	du := DoubleBuffUniverse{BaseUniverse: bu}
	//redefine the nextIteration
	du.BaseUniverse.nextIteration = du.nextIteration
	du.tmpBuff = make(Generation, du.options.Size)
	du.options.Advanced["engine"] = "doubleBuff"
	return &du, nil
}

func (du *DoubleBuffUniverse) nextIteration() {
	StepInto(du.tmpBuff, du.cells)
	du.cells, du.tmpBuff = du.tmpBuff, du.cells
}
