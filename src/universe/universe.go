package universe

import (
	"errors"
	"time"
)

//Cell is the state of one automaton cell, 0 (dead) or 1 (live)
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

//Generation is one snapshot of all cells, ordered by index
type Generation []Cell

//Options represents the Universe's configurable options
type Options struct {
	Size        int
	Generations int
	Advanced    map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display generations or control the engine
type Viewer interface {
	Register(u Universe) error
	Refresh() error
}

//RunningState is the universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSize        = 50
	DefGenerations = DefSize
)

const (
	RunningStateInitial  RunningState = 0x0
	RunningStateRunning  RunningState = 0x1
	RunningStateFinished RunningState = 0x2
)

var (
	ErrInvalidSize        = errors.New("invalid automaton size")
	ErrInvalidGenerations = errors.New("invalid number of generations")
	ErrFinished           = errors.New("universe is finished")
)

var DefaultUniverseOptions = Options{
	Size:        DefSize,
	Generations: DefGenerations,
}

func (s RunningState) String() string {
	switch s {
	case RunningStateInitial:
		return "initial"
	case RunningStateRunning:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

type Universe interface {
	Status() Status
	Options() Options
	Generation() Generation
	RegisterViewer(v Viewer) error
	InverseCell(i int) error
	Step() error
	Run() error
	Reset() error
}
