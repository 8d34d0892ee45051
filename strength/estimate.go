package strength

// Estimate evaluates one password: every matcher appends its candidates,
// each candidate gets its entropy, and the cover selector picks the weakest
// explanation. words are ad-hoc terms matched at rank 1 (user name, site
// name and similar); known are dates whose appearance in the password should
// cost nothing.
//
// The password is treated as opaque bytes; no Unicode normalization happens.
func (a *Analyzer) Estimate(password []byte, words []string, known []Date) (*Result, error) {
	if len(password) == 0 || len(password) > MaxPasswordLen {
		return nil, ErrPasswordLength
	}

	r := &Result{analyzer: a, matches: make([]Match, 0, matchBufLen)}

	if err := r.matchSpatial(password); err != nil {
		return nil, err
	}
	if err := r.matchDigits(password); err != nil {
		return nil, err
	}
	if err := r.matchDate(password, known); err != nil {
		return nil, err
	}
	if err := r.matchSequence(password); err != nil {
		return nil, err
	}
	if err := r.matchRepeat(password); err != nil {
		return nil, err
	}
	if err := r.matchDict(password, words); err != nil {
		return nil, err
	}

	r.assignEntropy(password)

	if err := r.buildCover(password); err != nil {
		return nil, err
	}
	return r, nil
}
