package view

import (
	"bytes"

	"github.com/logrusorgru/aurora"

	"rule110/src/universe"
)

const (
	LiveToken = "x "
	DeadToken = "  "
)

//Renderer converts a generation to a printable text line
type Renderer struct {
	liveFiller string
	deadFiller string
}

//NewRenderer creates the renderer, colors enables ANSI colors for the live cells
func NewRenderer(colors bool) *Renderer {
	au := aurora.NewAurora(colors)
	return &Renderer{
		liveFiller: au.Green("x").Bold().String() + " ",
		deadFiller: DeadToken,
	}
}

//Render returns one two-character token per cell followed by the line feed
func (r *Renderer) Render(g universe.Generation) string {
	var b bytes.Buffer
	b.Grow(len(g)*len(DeadToken) + 1)
	for _, c := range g {
		if c == universe.Live {
			b.WriteString(r.liveFiller)
		} else {
			b.WriteString(r.deadFiller)
		}
	}
	b.WriteByte('\n')
	return b.String()
}
