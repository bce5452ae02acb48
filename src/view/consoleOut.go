package view

import (
	"io"

	"rule110/src/universe"
)

const Header = "Rule 110 Cellular Automaton\n" +
	"--------------------------\n" +
	"Rule 110 Pattern:\n" +
	"111 -> 0    011 -> 1\n" +
	"110 -> 1    010 -> 1\n" +
	"101 -> 1    001 -> 1\n" +
	"100 -> 0    000 -> 0\n" +
	"\n"

const Footer = "\n" +
	"Rule 110 is proven to be Turing complete,\n" +
	"meaning it can simulate any Turing machine and\n" +
	"therefore compute anything that is computable.\n"

//ConsoleOut writes the header, every generation and the closing statement as plain text
//the first write error is kept and returned from all the following calls
type ConsoleOut struct {
	u   universe.Universe
	w   io.Writer
	r   *Renderer
	err error
}

func NewConsoleOut(w io.Writer, r *Renderer) *ConsoleOut {
	if r == nil {
		r = NewRenderer(false)
	}
	return &ConsoleOut{w: w, r: r}
}

func (c *ConsoleOut) Register(u universe.Universe) error {
	c.u = u
	return c.write(Header)
}

func (c *ConsoleOut) Refresh() error {
	if err := c.write(c.r.Render(c.u.Generation())); err != nil {
		return err
	}
	if c.u.Status().RunningMode == universe.RunningStateFinished {
		return c.write(Footer)
	}
	return nil
}

func (c *ConsoleOut) write(s string) error {
	if c.err != nil {
		return c.err
	}
	_, c.err = io.WriteString(c.w, s)
	return c.err
}
