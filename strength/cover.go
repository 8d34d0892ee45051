package strength

import "math"

// buildCover selects the minimum-entropy non-overlapping cover of the
// password by a position-indexed dynamic program: at each position, either
// extend the best cover of the previous position by one bruteforce byte, or
// end any candidate match there. Gaps left by the chosen matches are then
// synthesized as bruteforce matches. The cover records match indices, so the
// buffer growing while gaps are filled cannot invalidate it.
func (r *Result) buildCover(password []byte) error {
	length := len(password)
	card := r.analyzer.bruteforceCard(password)
	logCard := math.Log2(float64(card))

	posEntropy := make([]float64, length)
	back := make([]int, length)

	for pos := 0; pos < length; pos++ {
		best := logCard
		if pos > 0 {
			best += posEntropy[pos-1]
		}
		back[pos] = -1

		for mi := range r.matches {
			m := &r.matches[mi]
			if m.J != pos {
				continue
			}
			e := m.Entropy
			if m.I > 0 {
				e += posEntropy[m.I-1]
			}
			if best > e {
				best = e
				back[pos] = mi
			}
		}
		posEntropy[pos] = best
	}

	r.entropy = posEntropy[length-1]

	var chosen []int
	for pos := length - 1; pos >= 0; {
		mi := back[pos]
		if mi < 0 {
			pos--
			continue
		}
		chosen = append(chosen, mi)
		pos = r.matches[mi].I - 1
	}
	for l, h := 0, len(chosen)-1; l < h; l, h = l+1, h-1 {
		chosen[l], chosen[h] = chosen[h], chosen[l]
	}

	cover := make([]int, 0, len(chosen))
	pos := 0
	for _, mi := range chosen {
		m := r.matches[mi]
		if m.I > pos {
			bi, err := r.pushBruteforce(pos, m.I-1, logCard)
			if err != nil {
				return err
			}
			cover = append(cover, bi)
		}
		cover = append(cover, mi)
		pos = m.J + 1
	}
	if pos < length {
		bi, err := r.pushBruteforce(pos, length-1, logCard)
		if err != nil {
			return err
		}
		cover = append(cover, bi)
	}

	r.cover = cover
	return nil
}

func (r *Result) pushBruteforce(i, j int, logCard float64) (int, error) {
	err := r.push(Match{
		Type:    MatchBruteforce,
		I:       i,
		J:       j,
		Entropy: float64(j-i+1) * logCard,
	})
	if err != nil {
		return 0, err
	}
	return len(r.matches) - 1, nil
}
