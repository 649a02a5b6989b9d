package rbtree

import (
	"fmt"
	"io"
	"os"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// ConsolePalette holds the colors used to print red and black nodes.
type ConsolePalette struct {
	Red, Black *fcolor.Color
}

// DefaultPalette prints red nodes in red and black nodes in bold.
var DefaultPalette = ConsolePalette{
	Red:   fcolor.New(fcolor.FgRed),
	Black: fcolor.New(fcolor.Bold),
}

// DumpConsole writes the structural dump of Dump to stdout. If stdout is a
// terminal, node labels are colored according to DefaultPalette.
func (t *Tree[K, V]) DumpConsole(label Labeler[K, V]) {
	t.DumpColored(os.Stdout, label, &DefaultPalette, term.IsTerminal(int(os.Stdout.Fd())))
}

// DumpColored writes the structural dump of Dump to w. With colored set,
// labels are printed in the palette's colors instead of being tagged with
// the color name. A nil palette selects DefaultPalette.
func (t *Tree[K, V]) DumpColored(w io.Writer, label Labeler[K, V], palette *ConsolePalette, colored bool) {
	if !colored {
		t.Dump(w, label)
		return
	}
	if label == nil {
		label = defaultLabel[K, V]
	}
	if palette == nil {
		palette = &DefaultPalette
	}
	if t.IsEmpty() {
		io.WriteString(w, "(empty)\n")
		return
	}
	t.walkPre(func(r ref, depth int, side byte) {
		c := palette.Black
		if t.nodes[r].color == red {
			c = palette.Red
		}
		c.Fprint(w, t.dumpLine(r, depth, side, label))
		fmt.Fprintln(w)
	})
}
