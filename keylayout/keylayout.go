// Package keylayout provides precomputed key adjacency graphs for common
// keyboard and keypad layouts.
//
// A layout is a sparse grid of key labels. Each label holds the glyphs a key
// produces: two characters (unshifted then shifted) on keyboards, one on
// keypads. For every glyph the graph stores the labels of the surrounding
// keys, one per direction, with the key's own label in the final slot so that
// a repeated key reads as an adjacency step.
package keylayout

// Sentinel marks an absent neighbor slot. It contains no real glyph and
// therefore never matches a password byte.
const Sentinel = "\xff\xff"

// maxSlots is enough for the 8 aligned keypad directions plus the key itself.
const maxSlots = 9

// Graph is the adjacency table of a single layout.
type Graph struct {
	// Name identifies the layout ("qwerty", "dvorak", "keypad", "macpad").
	Name string

	// Neighbors maps a glyph byte to one label per direction slot.
	// Directional slots come first; the slot at index Slots()-1 is the
	// key's own label. Absent slots hold Sentinel.
	Neighbors [256][maxSlots]string

	// NChars is the number of labelled glyphs on the layout.
	NChars int

	// Degree is the average number of labelled directional neighbors per
	// glyph. The self slot is not counted.
	Degree float64

	// TokenSize is the number of glyphs per key label (1 or 2).
	TokenSize int

	slots int
}

// Slots returns the number of neighbor slots per glyph, including the self
// slot.
func (g *Graph) Slots() int {
	return g.slots
}

// Step reports whether cur sits on a key adjacent to prv on this layout, the
// key itself included. It returns the direction slot taken and whether cur is
// the shifted glyph of the destination key.
func (g *Graph) Step(prv, cur byte) (dir int, shifted, ok bool) {
	for d := 0; d < g.slots; d++ {
		token := g.Neighbors[prv][d]
		for k := 0; k < g.TokenSize; k++ {
			if token[k] == cur {
				return d, k > 0, true
			}
		}
	}
	return 0, false, false
}

// slantOffsets are the six neighbor positions on a slanted keyboard grid, in
// the order direction indices are assigned.
var slantOffsets = [][2]int{
	{-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 1},
}

// alignOffsets are the eight neighbor positions on an aligned keypad grid.
var alignOffsets = [][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// qwertyGrid and friends use "" for positions without a key. Rows must be
// equal length so that vertical neighbors line up.
var qwertyGrid = [][]string{
	{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "-_", "=+", ""},
	{"", "qQ", "wW", "eE", "rR", "tT", "yY", "uU", "iI", "oO", "pP", "[{", "]}", "\\|"},
	{"", "aA", "sS", "dD", "fF", "gG", "hH", "jJ", "kK", "lL", ";:", "'\"", "", ""},
	{"", "zZ", "xX", "cC", "vV", "bB", "nN", "mM", ",<", ".>", "/?", "", "", ""},
}

var dvorakGrid = [][]string{
	{"`~", "1!", "2@", "3#", "4$", "5%", "6^", "7&", "8*", "9(", "0)", "[{", "]}", ""},
	{"", "'\"", ",<", ".>", "pP", "yY", "fF", "gG", "cC", "rR", "lL", "/?", "=+", "\\|"},
	{"", "aA", "oO", "eE", "uU", "iI", "dD", "hH", "tT", "nN", "sS", "-_", "", ""},
	{"", ";:", "qQ", "jJ", "kK", "xX", "bB", "mM", "wW", "vV", "zZ", "", "", ""},
}

var keypadGrid = [][]string{
	{"", "/", "*", "-"},
	{"7", "8", "9", "+"},
	{"4", "5", "6", ""},
	{"1", "2", "3", ""},
	{"", "0", ".", ""},
}

var macPadGrid = [][]string{
	{"", "=", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", ""},
	{"0", ".", "", ""},
}

// Layouts available to the spatial matcher.
var (
	QWERTY = build("qwerty", qwertyGrid, 2, slantOffsets)
	Dvorak = build("dvorak", dvorakGrid, 2, slantOffsets)
	Keypad = build("keypad", keypadGrid, 1, alignOffsets)
	MacPad = build("macpad", macPadGrid, 1, alignOffsets)
)

// All lists the layouts in the order the spatial matcher walks them.
var All = []*Graph{QWERTY, Dvorak, Keypad, MacPad}

func build(name string, grid [][]string, tokenSize int, offsets [][2]int) *Graph {
	g := &Graph{
		Name:      name,
		TokenSize: tokenSize,
		slots:     len(offsets) + 1,
	}
	for i := range g.Neighbors {
		for d := 0; d < maxSlots; d++ {
			g.Neighbors[i][d] = Sentinel
		}
	}

	at := func(x, y int) string {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return ""
		}
		return grid[y][x]
	}

	labelled := 0
	for y := range grid {
		for x := range grid[y] {
			label := grid[y][x]
			if label == "" {
				continue
			}
			for k := 0; k < len(label); k++ {
				glyph := label[k]
				g.NChars++
				for d, off := range offsets {
					if n := at(x+off[0], y+off[1]); n != "" {
						g.Neighbors[glyph][d] = n
						labelled++
					}
				}
				g.Neighbors[glyph][len(offsets)] = label
			}
		}
	}
	g.Degree = float64(labelled) / float64(g.NChars)

	return g
}
