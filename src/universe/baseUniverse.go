package universe

import (
	"fmt"
	"time"
)

//BaseUniverse is the base universe's engine
//implements Universe interface
//can be used to create different implementations by redefining nextIteration func
type BaseUniverse struct {
	options       Options
	state         Status
	cells         Generation
	views         []Viewer
	nextIteration func()
}

//NewBaseUniverse creates the BaseUniverse instance seeded with generation 0
//nil options means DefaultUniverseOptions
func NewBaseUniverse(o *Options) (*BaseUniverse, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	u := BaseUniverse{options: *o}
	u.options.Advanced = map[string]interface{}{"engine": "base"}
	//nextIteration can be implemented by successor
	u.nextIteration = u._nextIteration
	if err := u.seed(); err != nil {
		return nil, err
	}
	return &u, nil
}

//validateOptions fails fast on a configuration no automaton can be built from
func validateOptions(o *Options) error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidSize, o.Size)
	}
	if o.Generations < 0 {
		return fmt.Errorf("%w: must not be negative, got %d", ErrInvalidGenerations, o.Generations)
	}
	return nil
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
//the viewer is refreshed once right away so it can show the current generation
func (u *BaseUniverse) RegisterViewer(v Viewer) error {
	u.views = append(u.views, v)
	if err := v.Register(u); err != nil {
		return fmt.Errorf("register viewer: %w", err)
	}
	return u.refreshView()
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	return u.state
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Generation returns a copy of the current generation
func (u *BaseUniverse) Generation() Generation {
	return u.cells.Clone()
}

//Step computes the next generation and notifies the viewers
//returns ErrFinished when all configured generations are already computed
func (u *BaseUniverse) Step() error {
	if u.state.RunningMode == RunningStateFinished {
		return ErrFinished
	}

	start := time.Now()
	u.nextIteration()
	u.state.IterationTime = time.Since(start)
	u.state.IterationNum++
	u.state.LiveCells = u.cells.LiveCells()
	if u.state.IterationNum >= u.options.Generations {
		u.state.RunningMode = RunningStateFinished
	} else {
		u.state.RunningMode = RunningStateRunning
	}
	return u.refreshView()
}

//Run steps the universe until it is finished or a viewer fails
func (u *BaseUniverse) Run() error {
	for u.state.RunningMode != RunningStateFinished {
		if err := u.Step(); err != nil {
			return err
		}
	}
	return nil
}

//Reset reseeds generation 0 and resets all counters
func (u *BaseUniverse) Reset() error {
	if err := u.seed(); err != nil {
		return err
	}
	return u.refreshView()
}

//InverseCell inverses the state of the cell i of the current generation
func (u *BaseUniverse) InverseCell(i int) error {
	if i < 0 || i >= len(u.cells) {
		return nil
	}
	u.cells[i] ^= Live
	u.state.LiveCells = u.cells.LiveCells()
	return u.refreshView()
}

//seed places generation 0 and resets the state
func (u *BaseUniverse) seed() error {
	cells, err := Initialize(u.options.Size)
	if err != nil {
		return err
	}
	u.cells = cells
	u.state = Status{RunningMode: RunningStateInitial, LiveCells: cells.LiveCells()}
	if u.options.Generations == 0 {
		u.state.RunningMode = RunningStateFinished
	}
	return nil
}

//_nextIteration does one simulation cycle
//the simplest implementation: allocates the new generation on each call
//and replaces the current one with it
func (u *BaseUniverse) _nextIteration() {
	u.cells = Step(u.cells)
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() error {
	for _, v := range u.views {
		if err := v.Refresh(); err != nil {
			return fmt.Errorf("refresh view: %w", err)
		}
	}
	return nil
}
