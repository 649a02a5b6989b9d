package ordmap

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width positions ('en's) s
// occupies on a console.
//
// uax11 counts every rune with the emoji property as wide. Digits, '#' and
// '*' have that property as keycap bases, but are narrow unless followed by
// a keycap sequence, so single-byte graphemes are counted as narrow here.
func displayWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), uax11.LatinContext)
	}
	return w
}

// WriteTable writes all entries in ascending key order to w, one per line,
// with keys and values formatted by %v. Values are aligned in a column
// according to the console display width of the keys, which respects wide
// East Asian characters.
//
//	1    : one
//	10   : ten
//	日本 : japan
//
// The key column is 4 positions wide here, as 日本 occupies two wide cells.
func (m *Map[K, V]) WriteTable(w io.Writer) error {
	var keys, values []string
	colwidth := 0
	for k, v := range m.All() {
		ks := fmt.Sprintf("%v", k)
		keys = append(keys, ks)
		values = append(values, fmt.Sprintf("%v", v))
		colwidth = max(colwidth, displayWidth(ks))
	}
	for i, ks := range keys {
		pad := strings.Repeat(" ", colwidth-displayWidth(ks))
		if _, err := fmt.Fprintf(w, "%s%s : %s\n", ks, pad, values[i]); err != nil {
			return err
		}
	}
	return nil
}
