package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"rule110/src/universe"
	"rule110/src/view"
)

//sameAsSize is the generations flag value meaning "as many generations as cells"
const sameAsSize = -1

var (
	engines = map[string]func(o *universe.Options) (universe.Universe, error){
		"base": func(o *universe.Options) (universe.Universe, error) {
			return universe.NewBaseUniverse(o)
		},
		"doubleBuff": universe.NewDoubleBuffUniverse,
	}
)

type EnvOptions struct {
	interactive bool
	colors      bool
	engine      string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("rule110: ")

	eo, uo := initOptions()
	if err := run(os.Stdout, eo, uo); err != nil {
		log.Fatalln(err)
	}
}

//run builds the universe, attaches the viewer and drives it until the last generation
func run(w io.Writer, eo *EnvOptions, uo *universe.Options) error {
	newUniverse, ok := engines[eo.engine]
	if !ok {
		return fmt.Errorf("unknown engine %q", eo.engine)
	}
	u, err := newUniverse(uo)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	r := view.NewRenderer(eo.colors)

	if eo.interactive {
		v, err := view.NewViewTerminal(r)
		if err != nil {
			return err
		}
		if err := u.RegisterViewer(v); err != nil {
			v.Close()
			return err
		}
		return v.Start()
	}

	if err := u.RegisterViewer(view.NewConsoleOut(w, r)); err != nil {
		return err
	}
	return u.Run()
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	uo.Generations = sameAsSize
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	eo = &EnvOptions{engine: "base"}
	flaggy.SetName("rule110")
	flaggy.SetDescription("Rule 110 elementary cellular automaton")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Size, "x", "size", "Number of cells in a generation")
	flaggy.Int(&uo.Generations, "g", "generations", "Number of generations to compute (default: same as size)")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.Bool(&eo.colors, "c", "color", "Colorize live cells")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")

	flaggy.Parse()

	if _, ok := engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if uo.Generations == sameAsSize {
		uo.Generations = uo.Size
	}

	return
}
