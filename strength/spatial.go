package strength

import "github.com/pwcheck/zxcvbn/keylayout"

// matchSpatial walks the password over every supported layout and emits one
// match per adjacency run longer than two bytes. Runs restart at the byte
// that broke adjacency. Turns counts every direction change including the
// first step; Shifted counts steps landing on the shifted glyph of a key.
func (r *Result) matchSpatial(password []byte) error {
	for _, g := range keylayout.All {
		if err := r.matchSpatialGraph(password, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) matchSpatialGraph(password []byte, g *keylayout.Graph) error {
	i := 0
	for i+2 < len(password) {
		j := i + 1
		prvDir := -1
		turns, shifted := 0, 0
		for j < len(password) {
			dir, shift, ok := g.Step(password[j-1], password[j])
			if !ok {
				break
			}
			if shift {
				shifted++
			}
			if dir != prvDir {
				turns++
				prvDir = dir
			}
			j++
		}
		if j-i > 2 {
			err := r.push(Match{
				Type:    MatchSpatial,
				I:       i,
				J:       j - 1,
				Graph:   g,
				Turns:   turns,
				Shifted: shifted,
			})
			if err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}
