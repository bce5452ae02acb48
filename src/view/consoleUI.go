package view

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"rule110/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer
//it keeps the history of the rendered generations and lets the user drive the universe
type ConsoleUI struct {
	u             universe.Universe
	g             *gocui.Gui
	k             []keyBindings
	r             *Renderer
	history       []string
	lastIteration int
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateInitial:  aurora.Colorize("initial", aurora.BlueFg).String(),
		universe.RunningStateRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal(r *Renderer) (*ConsoleUI, error) {

	var err error
	if r == nil {
		r = NewRenderer(true)
	}
	t := ConsoleUI{r: r}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next generation",
			t.cmdNextGeneration,
			""},
		{'r',
			"R",
			"Run to the end",
			t.cmdRun,
			""},
		{'c',
			"C",
			"Reset",
			t.cmdReset,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Inverse the cell",
			t.cmdMouseClick,
			"automaton"},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return fmt.Errorf("keybinding %s: %w", kb.name, err)
		}
	}
	return nil
}

func (t *ConsoleUI) Register(u universe.Universe) error {
	t.u = u
	return nil
}

//Start runs the terminal main loop until the user exits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

//Close releases the terminal without starting the main loop
func (t *ConsoleUI) Close() {
	t.g.Close()
}

func (t *ConsoleUI) Refresh() error {
	t.record(t.u.Status().IterationNum, t.r.Render(t.u.Generation()))
	t.renderAutomaton()
	t.renderConfiguration()
	t.renderStatus()
	return nil
}

//record adds the rendered generation to the history
//a repeated iteration replaces the last line, an earlier one means the universe was reset
func (t *ConsoleUI) record(iteration int, line string) {
	switch {
	case len(t.history) == 0 || iteration > t.lastIteration:
		t.history = append(t.history, line)
	case iteration == t.lastIteration:
		t.history[len(t.history)-1] = line
	default:
		t.history = append(t.history[:0], line)
	}
	t.lastIteration = iteration
}

func (t *ConsoleUI) renderAutomaton() {
	lines := strings.Join(t.history, "")

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("automaton")
		if e != nil {
			if errors.Is(e, gocui.ErrUnknownView) {
				return nil
			}
			return e
		}
		v.Clear()
		_, _ = fmt.Fprint(v, lines)
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	c := t.u.Options()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Size", "%v cells", c.Size))
			_, _ = fmt.Fprintln(v, t.renderProp("Generations", "%v", c.Generations))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Advanced["engine"]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("automaton")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "Rule 110 Cellular Automaton"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("automaton", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Automaton"
		v.Frame = true
		v.Autoscroll = true
		t.renderAutomaton()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextGeneration(_ *gocui.View) error {
	if err := t.u.Step(); err != nil && !errors.Is(err, universe.ErrFinished) {
		return err
	}
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	return t.u.Run()
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	return t.u.Reset()
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, _ := v.Cursor()
	ox, _ := v.Origin()
	return t.u.InverseCell((cx + ox) / len(DeadToken))
}
