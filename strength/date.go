package strength

// Date recognition runs two passes: separator-free dates inside digit runs,
// then separator-bearing dates via a small state machine. Both feed day,
// month and year candidates through the same probe, which does not check real
// calendar validity (Feb 30 passes).

const (
	dateMinNosepLen = 4
	dateMaxNosepLen = 8
	dateMinSepLen   = 6

	dateRefYear      = 2000
	dateMinYear      = 1000
	dateMaxYear      = 2050
	dateFullYearMin  = 1900
	dateMinYearSpace = 20
)

func parseNumber(s []byte) int {
	n := 0
	for _, b := range s {
		n = n*10 + int(b-'0')
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// yearDist is the distance of a candidate's year from the reference year,
// used to prefer plausible readings.
func yearDist(d Date) int {
	return absInt(d.Year - dateRefYear)
}

// probeYear accepts a bare 4-digit year.
func probeYear(s []byte) (Date, bool) {
	year := parseNumber(s[:4])
	if year < dateMinYear || year > dateMaxYear {
		return Date{}, false
	}
	return Date{Year: year, OnlyYear: true, FullYear: true}, true
}

// probe flag bits, matching the state table below.
const (
	probeLeftYear  = 1 << 0
	probeRightYear = 1 << 1
	probeFullYear  = 1 << 2
)

// probeDate tries to read nums as a (day, month, year) triple. The middle
// number can never be a year. Year candidates are taken from the left and/or
// right number as flags allow, with day and month tried in both remaining
// orders. A candidate equal to a known date wins immediately; otherwise the
// reading whose year is closest to the reference year wins.
func probeDate(nums [3]int, flags int, known []Date) (Date, bool) {
	if nums[1] > 31 || nums[1] == 0 {
		return Date{}, false
	}
	var over31, over12, equal0 int
	for _, n := range nums {
		if n > 31 {
			over31++
		}
		if n > 12 {
			over12++
		}
		if n == 0 {
			equal0++
		}
	}
	if over31 >= 2 || over12 == 3 || equal0 >= 2 {
		return Date{}, false
	}

	sides := [2]struct {
		on      bool
		yearIdx int
		pairs   [2][2]int // day index, month index
	}{
		{flags&probeLeftYear != 0, 0, [2][2]int{{2, 1}, {1, 2}}},
		{flags&probeRightYear != 0, 2, [2][2]int{{0, 1}, {1, 0}}},
	}

	var best Date
	bestSet := false
	for _, side := range sides {
		if !side.on {
			continue
		}
		year := nums[side.yearIdx]
		full := flags&probeFullYear != 0
		if full {
			if year < dateFullYearMin || year > dateMaxYear {
				continue
			}
		} else if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		for _, pair := range side.pairs {
			day, month := nums[pair[0]], nums[pair[1]]
			if day == 0 || day > 31 || month == 0 || month > 12 {
				continue
			}
			cand := Date{Day: day, Month: month, Year: year, FullYear: full}
			for _, k := range known {
				if k.Day == day && k.Month == month && k.Year == year {
					cand.FromList = true
					return cand, true
				}
			}
			if !bestSet || yearDist(best) > yearDist(cand) {
				best = cand
				bestSet = true
			}
		}
	}
	return best, bestSet
}

// nosepSplits enumerates the legal (day|month|year) cut positions for each
// separator-free candidate length, indexed by length-4.
var nosepSplits = [5][][2]int{
	{{1, 2}, {2, 3}},
	{{1, 3}, {2, 3}},
	{{1, 2}, {2, 4}, {4, 5}},
	{{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	{{2, 4}, {4, 6}},
}

// probeSplit cuts s at the given positions and probes the three numbers.
// Which side may hold the year, and whether it is a 4-digit year, follows
// from the cut geometry.
func probeSplit(s []byte, split [2]int, known []Date) (Date, bool) {
	tailLen := len(s) - split[1]
	nums := [3]int{
		parseNumber(s[:split[0]]),
		parseNumber(s[split[0]:split[1]]),
		parseNumber(s[split[1]:]),
	}

	flags := probeLeftYear | probeRightYear
	if split[0] == 4 || tailLen == 1 {
		flags &^= probeRightYear
	} else if split[0] == 1 || tailLen == 4 {
		flags &^= probeLeftYear
	}
	if split[0] == 4 || tailLen == 4 {
		flags |= probeFullYear
	}
	return probeDate(nums, flags, known)
}

// matchDateNosep scans maximal digit runs and probes every substring of
// length 8 down to 4 at every start. Length-4 substrings first probe a bare
// year (checked against known dates by year alone); among split readings a
// known date wins, then the year closest to the reference year.
func (r *Result) matchDateNosep(password []byte, known []Date) error {
	i := 0
	for i+dateMinNosepLen-1 < len(password) {
		if !isDigit(password[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(password) && isDigit(password[j]) {
			j++
		}
		runLen := j - i
		if runLen < dateMinNosepLen {
			i += runLen + 1
			continue
		}

		maxLen := runLen
		if maxLen > dateMaxNosepLen {
			maxLen = dateMaxNosepLen
		}
		for l := maxLen; l >= dateMinNosepLen; l-- {
			for k := i; k <= i+runLen-l; k++ {
				s := password[k : k+l]

				if l == 4 {
					if d, ok := probeYear(s); ok {
						for _, kd := range known {
							if d.Year == kd.Year {
								d.FromList = true
								break
							}
						}
						if err := r.push(Match{Type: MatchDate, I: k, J: k + l - 1, Date: d}); err != nil {
							return err
						}
						continue
					}
				}

				var best Date
				bestSet := false
				for _, split := range nosepSplits[l-dateMinNosepLen] {
					d, ok := probeSplit(s, split, known)
					if !ok {
						continue
					}
					if !bestSet || d.FromList || yearDist(best) > yearDist(d) {
						best = d
						bestSet = true
					}
					if best.FromList {
						break
					}
				}
				if bestSet {
					if err := r.push(Match{Type: MatchDate, I: k, J: k + l - 1, Date: best}); err != nil {
						return err
					}
				}
			}
		}
		i += runLen + 1
	}
	return nil
}

// dateState is one row of the separator form recognizer. Rows advance on the
// input class (digit, separator, other/end); a negative next ends the scan
// and skip tells the outer loop how far past the scan start to resume. num
// stores the accumulated number, try probes the numbers gathered so far with
// probeFlags.
type dateState struct {
	next       [3]int8
	skip       [3]uint8
	num        int8
	try        bool
	probeFlags int
}

// dateStates recognizes D[D]?<sep>M[M]?<sep>Y{2|4} and Y{4}<sep>M[M]?<sep>D[D]?.
// States 0-1 read the leading digits; 2-14 handle a 2-digit lead, 15-27 a
// 1-digit lead (each with a 2- or 4-digit tail), 28-38 a 4-digit lead year.
var dateStates = []dateState{
	{next: [3]int8{1, 15, -1}, skip: [3]uint8{1, 1, 2}, num: -1},
	{next: [3]int8{28, 2, -1}, skip: [3]uint8{1, 1, 3}, num: -1},
	{next: [3]int8{3, -1, -1}, skip: [3]uint8{1, 4, 4}, num: 0},
	{next: [3]int8{4, 10, -1}, skip: [3]uint8{1, 1, 5}, num: -1},
	{next: [3]int8{-1, 5, -1}, skip: [3]uint8{3, 1, 6}, num: -1},
	{next: [3]int8{6, -1, -1}, skip: [3]uint8{1, 7, 7}, num: 1},
	{next: [3]int8{7, -1, -1}, skip: [3]uint8{1, 3, 8}, num: 2, try: true, probeFlags: probeLeftYear},
	{next: [3]int8{8, -1, -1}, skip: [3]uint8{1, 1, 9}, num: 2, try: true, probeFlags: probeLeftYear | probeRightYear},
	{next: [3]int8{9, -1, -1}, skip: [3]uint8{1, 1, 10}, num: -1},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{1, 1, 11}, num: 2, try: true, probeFlags: probeRightYear | probeFullYear},
	{next: [3]int8{11, -1, -1}, skip: [3]uint8{1, 6, 6}, num: 1},
	{next: [3]int8{12, -1, -1}, skip: [3]uint8{1, 3, 7}, num: 2, try: true, probeFlags: probeLeftYear},
	{next: [3]int8{13, -1, -1}, skip: [3]uint8{1, 1, 8}, num: 2, try: true, probeFlags: probeLeftYear | probeRightYear},
	{next: [3]int8{14, -1, -1}, skip: [3]uint8{1, 1, 9}, num: -1},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{1, 1, 10}, num: 2, try: true, probeFlags: probeRightYear | probeFullYear},
	{next: [3]int8{16, -1, -1}, skip: [3]uint8{1, 3, 3}, num: 0},
	{next: [3]int8{17, 23, -1}, skip: [3]uint8{1, 1, 4}, num: -1},
	{next: [3]int8{-1, 18, -1}, skip: [3]uint8{2, 1, 5}, num: -1},
	{next: [3]int8{19, -1, -1}, skip: [3]uint8{1, 6, 6}, num: 1},
	{next: [3]int8{20, -1, -1}, skip: [3]uint8{1, 2, 7}, num: -1},
	{next: [3]int8{21, -1, -1}, skip: [3]uint8{1, 2, 8}, num: 2, try: true, probeFlags: probeRightYear},
	{next: [3]int8{22, -1, -1}, skip: [3]uint8{1, 6, 9}, num: -1},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{6, 5, 10}, num: 2, try: true, probeFlags: probeRightYear | probeFullYear},
	{next: [3]int8{24, -1, -1}, skip: [3]uint8{1, 5, 5}, num: 1},
	{next: [3]int8{25, -1, -1}, skip: [3]uint8{1, 2, 6}, num: -1},
	{next: [3]int8{26, -1, -1}, skip: [3]uint8{1, 2, 7}, num: 2, try: true, probeFlags: probeRightYear},
	{next: [3]int8{27, -1, -1}, skip: [3]uint8{1, 5, 8}, num: -1},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{5, 4, 9}, num: 2, try: true, probeFlags: probeRightYear | probeFullYear},
	{next: [3]int8{29, -1, -1}, skip: [3]uint8{1, 1, 4}, num: -1},
	{next: [3]int8{-1, 30, -1}, skip: [3]uint8{1, 1, 5}, num: -1},
	{next: [3]int8{31, -1, -1}, skip: [3]uint8{1, 6, 6}, num: 0},
	{next: [3]int8{32, 36, -1}, skip: [3]uint8{1, 1, 7}, num: -1},
	{next: [3]int8{-1, 33, -1}, skip: [3]uint8{5, 1, 8}, num: -1},
	{next: [3]int8{34, -1, -1}, skip: [3]uint8{1, 9, 9}, num: 1},
	{next: [3]int8{35, -1, -1}, skip: [3]uint8{1, 2, 10}, num: 2, try: true, probeFlags: probeLeftYear | probeFullYear},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{2, 2, 11}, num: 2, try: true, probeFlags: probeLeftYear | probeFullYear},
	{next: [3]int8{37, -1, -1}, skip: [3]uint8{1, 8, 8}, num: 1},
	{next: [3]int8{38, -1, -1}, skip: [3]uint8{1, 2, 9}, num: 2, try: true, probeFlags: probeLeftYear | probeFullYear},
	{next: [3]int8{-1, -1, -1}, skip: [3]uint8{2, 2, 10}, num: 2, try: true, probeFlags: probeLeftYear | probeFullYear},
}

func isDateSeparator(b byte) bool {
	switch b {
	case '-', '.', '_', '/', '\\':
		return true
	}
	return false
}

// matchDateSep recognizes separator-bearing dates. Among accepts from the
// same start, each later (longer) accept replaces the current reading, except
// that once a known-date reading is held only a longer known-date reading
// replaces it. Year distance does not decide between accepts.
func (r *Result) matchDateSep(password []byte, known []Date) error {
	i := 0
	for i+dateMinSepLen-1 < len(password) {
		if !isDigit(password[i]) {
			i++
			continue
		}

		st := 0
		var best Date
		bestSet := false
		end := 0
		skip := 1
		var nums [3]int
		n := int(password[i] - '0')
		for j := i + 1; ; j++ {
			var id int
			if j < len(password) {
				switch ch := password[j]; {
				case isDigit(ch):
					id = 0
					n = n*10 + int(ch-'0')
				case isDateSeparator(ch):
					id = 1
				default:
					id = 2
				}
			} else {
				id = 2
			}
			next := dateStates[st].next[id]
			if next < 0 {
				skip = int(dateStates[st].skip[id])
				break
			}
			st = int(next)
			state := &dateStates[st]
			if state.num >= 0 {
				nums[state.num] = n
			}
			if id != 0 {
				n = 0
			}
			if !state.try {
				continue
			}
			d, ok := probeDate(nums, state.probeFlags, known)
			if !ok {
				continue
			}
			replace := false
			switch {
			case !bestSet:
				replace = true
			case best.FromList:
				replace = d.FromList && end < j
			default:
				replace = d.FromList || yearDist(best) > yearDist(d) || end < j
			}
			if replace {
				best = d
				bestSet = true
				end = j
			}
		}
		if bestSet {
			best.Separator = true
			if err := r.push(Match{Type: MatchDate, I: i, J: end, Date: best}); err != nil {
				return err
			}
		}
		i += skip
	}
	return nil
}

func (r *Result) matchDate(password []byte, known []Date) error {
	if err := r.matchDateNosep(password, known); err != nil {
		return err
	}
	return r.matchDateSep(password, known)
}
