package strength

import (
	"math"
	"strings"
)

// nCk is the binomial coefficient, computed with the running-product trick so
// every intermediate division is exact.
func nCk(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	var r uint64 = 1
	for d := 1; d <= k; d++ {
		r *= uint64(n)
		r /= uint64(d)
		n--
	}
	return float64(r)
}

// assignEntropy fills in the entropy of every candidate match. Bruteforce
// matches are not produced until the cover pass and carry their entropy from
// birth.
func (r *Result) assignEntropy(password []byte) {
	for i := range r.matches {
		m := &r.matches[i]
		switch m.Type {
		case MatchDict:
			r.entropyDict(m, password)
		case MatchSpatial:
			r.entropySpatial(m)
		case MatchDigits:
			m.Entropy = float64(m.Len()) * math.Log2(10)
		case MatchDate:
			r.entropyDate(m)
		case MatchSequence:
			r.entropySequence(m, password)
		case MatchRepeat:
			m.Entropy = math.Log2(float64(r.analyzer.byteCard(password[m.I]) * m.Len()))
		}
	}
}

// entropyDict is log2(rank) plus a case bump: nothing for all-lowercase, one
// bit for a single leading capital, otherwise the log of the number of ways
// to place that many capitals among the word's letters.
func (r *Result) entropyDict(m *Match, password []byte) {
	m.Entropy = math.Log2(float64(m.Rank))

	var upper, lower int
	for i := m.I; i <= m.J; i++ {
		switch b := password[i]; {
		case b >= 'A' && b <= 'Z':
			upper++
		case b >= 'a' && b <= 'z':
			lower++
		}
	}

	first := password[m.I]
	if upper == 1 && first >= 'A' && first <= 'Z' {
		m.Entropy++
	} else if upper > 0 {
		minUL := upper
		if lower < minUL {
			minUL = lower
		}
		var possibilities float64
		for i := 0; i <= minUL; i++ {
			possibilities += nCk(upper+lower, i)
		}
		m.Entropy += math.Log2(possibilities)
	}
}

// entropySpatial counts walks of every length up to the match's with up to
// the observed number of turns, then adds a bump for shifted steps.
func (r *Result) entropySpatial(m *Match) {
	g := m.Graph
	length := m.Len()

	var possibilities float64
	for i := 2; i <= length; i++ {
		possibleTurns := m.Turns
		if i-1 < possibleTurns {
			possibleTurns = i - 1
		}
		for j := 1; j <= possibleTurns; j++ {
			possibilities += nCk(i-1, j-1) * float64(g.NChars) * math.Pow(g.Degree, float64(j))
		}
	}
	m.Entropy = math.Log2(possibilities)

	if m.Shifted > 0 {
		s := m.Shifted
		u := length - s
		minSU := s
		if u < minSU {
			minSU = u
		}
		possibilities = 0
		for i := 0; i <= minSU; i++ {
			possibilities += nCk(s+u, i)
		}
		m.Entropy += math.Log2(possibilities)
	}
}

// entropyDate is the year space (at least dateMinYearSpace years around the
// reference) times day-month possibilities, zeroed for known dates, plus
// format bumps for a 4-digit year and separators.
func (r *Result) entropyDate(m *Match) {
	if m.Date.FromList {
		m.Entropy = 0
	} else {
		possib := float64(yearDist(m.Date))
		if possib < dateMinYearSpace {
			possib = dateMinYearSpace
		}
		if !m.Date.OnlyYear {
			possib *= 12 * 31
		}
		m.Entropy = math.Log2(possib)
	}
	if m.Date.FullYear {
		m.Entropy++
	}
	if m.Date.Separator {
		m.Entropy += 2
	}
}

// entropySequence is one bit for an obvious start, else the sequence's
// alphabet size and familiarity bump; descending runs cost one more bit, and
// length multiplies the space.
func (r *Result) entropySequence(m *Match, password []byte) {
	if strings.IndexByte(seqObviousStarts, password[m.I]) >= 0 {
		m.Entropy = 1
	} else {
		m.Entropy = math.Log2(float64(len(m.Seq.Chars))) + m.Seq.ExtraEntropy
	}
	if m.Descending {
		m.Entropy++
	}
	m.Entropy += math.Log2(float64(m.Len()))
}
