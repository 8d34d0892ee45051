package strength

import "strings"

// Sequence describes a well-known character sequence a password may walk
// through, forward or backward, with wraparound.
type Sequence struct {
	// Chars is the sequence in ascending order.
	Chars string

	// ExtraEntropy is added for sequences less familiar than plain
	// lowercase Latin or digits.
	ExtraEntropy float64
}

// sequences lists, in probe order: lowercase and uppercase Latin, the Dvorak
// home-row walk in both cases, transliterated Cyrillic in both cases, and
// decimal digits.
var sequences = []Sequence{
	{"abcdefghijklmnopqrstuvwxyz", 0},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", 1},
	{"f,dult;pbqrkvyjghcnea[wxio]sm'.z", 1},
	{"F<DULT:PBQRKVYJGHCNEA{WXIO}SM\">Z", 2},
	{"abvgdegziyklmnoprstufhc", 1},
	{"ABVGDEGZIYKLMNOPRSTUFHC", 2},
	{"0123456789", 0},
}

// seqObviousStarts are the starting bytes that make a sequence guessable
// regardless of which sequence it is.
const seqObviousStarts = "aAzZfF019"

const seqMinLen = 3

// matchSequence emits a match for each run of three or more bytes that steps
// through a known sequence in one consistent direction. Steps are modular on
// the sequence's indices. Each start uses the first sequence in which its
// first two bytes form a step, and after a candidate the scan resumes at the
// byte that ended it, so a run beginning inside an earlier candidate is not
// reported ("babc" yields no match for "abc").
func (r *Result) matchSequence(password []byte) error {
	i := 0
	for i+seqMinLen-1 < len(password) {
		var seq *Sequence
		dir := 0
		jn := 0
		for s := range sequences {
			sq := &sequences[s]
			in := strings.IndexByte(sq.Chars, password[i])
			if in < 0 {
				continue
			}
			next := strings.IndexByte(sq.Chars, password[i+1])
			if next < 0 {
				continue
			}
			n := len(sq.Chars)
			if (in+1)%n == next {
				seq, dir, jn = sq, 1, next
				break
			}
			if (next+1)%n == in {
				seq, dir, jn = sq, -1, next
				break
			}
		}
		if seq == nil {
			i++
			continue
		}

		j := i + 2
		n := len(seq.Chars)
		for j < len(password) {
			k := strings.IndexByte(seq.Chars, password[j])
			if k < 0 || k != (n+jn+dir)%n {
				break
			}
			jn = k
			j++
		}

		if j-i >= seqMinLen {
			err := r.push(Match{
				Type:       MatchSequence,
				I:          i,
				J:          j - 1,
				Seq:        seq,
				Descending: dir == -1,
			})
			if err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}
