package strength

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pwcheck/zxcvbn/keylayout"
)

// testSymbols is the symbol alphabet the CLI ships with.
const testSymbols = "!@#$%^&*()-_+=;:,./?\\|`~[]{}"

func testAnalyzer() *Analyzer {
	return New(Options{Symbols: testSymbols})
}

func estimate(t *testing.T, a *Analyzer, password string) *Result {
	res, err := a.Estimate([]byte(password), nil, nil)
	if !assert.NoError(t, err, "estimating %q", password) {
		t.FailNow()
	}
	return res
}

// assertCover checks the universal cover invariants: entries are in order,
// disjoint, adjacent, jointly span the password, and their entropies sum to
// the reported total.
func assertCover(t *testing.T, res *Result, passwordLen int) {
	cover := res.Cover()
	if !assert.NotEmpty(t, cover) {
		return
	}
	pos := 0
	sum := 0.0
	for _, m := range cover {
		assert.Equal(t, pos, m.I, "cover entries must touch")
		assert.True(t, m.J >= m.I)
		assert.False(t, math.IsNaN(m.Entropy) || math.IsInf(m.Entropy, 0))
		assert.True(t, m.Entropy >= 0)
		pos = m.J + 1
		sum += m.Entropy
	}
	assert.Equal(t, passwordLen, pos, "cover must span the whole password")
	assert.InDelta(t, res.Entropy(), sum, 1e-9)
}

func TestQwertyRun(t *testing.T) {
	res := estimate(t, testAnalyzer(), "qwerty")
	assertCover(t, res, 6)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	m := cover[0]
	assert.Equal(t, MatchSpatial, m.Type)
	assert.Equal(t, keylayout.QWERTY, m.Graph)
	assert.Equal(t, 0, m.I)
	assert.Equal(t, 5, m.J)
	assert.Equal(t, 1, m.Turns)
	assert.Equal(t, 0, m.Shifted)
}

func TestTwoVerticalRuns(t *testing.T) {
	res := estimate(t, testAnalyzer(), "1qaz2wsx")
	assertCover(t, res, 8)

	cover := res.Cover()
	if !assert.Len(t, cover, 2) {
		t.FailNow()
	}
	for _, m := range cover {
		assert.Equal(t, MatchSpatial, m.Type)
		assert.Equal(t, keylayout.QWERTY, m.Graph)
		assert.Equal(t, 1, m.Turns)
	}
	assert.Equal(t, 3, cover[0].J)
	assert.Equal(t, 4, cover[1].I)
}

func TestAscendingSequence(t *testing.T) {
	res := estimate(t, testAnalyzer(), "abcdef")
	assertCover(t, res, 6)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	m := cover[0]
	assert.Equal(t, MatchSequence, m.Type)
	assert.False(t, m.Descending)
	// Obvious start: 1 bit for the sequence, log2(6) for the length.
	assert.InDelta(t, 1+math.Log2(6), m.Entropy, 1e-9)
}

func TestDescendingSequence(t *testing.T) {
	res := estimate(t, testAnalyzer(), "fedcba")
	assertCover(t, res, 6)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	m := cover[0]
	assert.Equal(t, MatchSequence, m.Type)
	assert.True(t, m.Descending)
	assert.InDelta(t, 1+1+math.Log2(6), m.Entropy, 1e-9)
}

func TestRepeatRun(t *testing.T) {
	res := estimate(t, testAnalyzer(), "zzzzz")
	assertCover(t, res, 5)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	assert.Equal(t, MatchRepeat, cover[0].Type)
	assert.InDelta(t, math.Log2(26*5), res.Entropy(), 1e-9)
}

func TestRepeatCoversThreeBytes(t *testing.T) {
	res := estimate(t, testAnalyzer(), "aaa")
	assertCover(t, res, 3)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	assert.Equal(t, MatchRepeat, cover[0].Type)
}

func TestSingleBytePassword(t *testing.T) {
	res := estimate(t, testAnalyzer(), "a")
	assertCover(t, res, 1)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	assert.Equal(t, MatchBruteforce, cover[0].Type)
	assert.InDelta(t, math.Log2(26), res.Entropy(), 1e-9)
}

func TestBruteforceOnlyEntropy(t *testing.T) {
	// No matcher fires on this password, so the whole cover is one
	// bruteforce match at L*log2(26).
	res := estimate(t, testAnalyzer(), "axmzk")
	assertCover(t, res, 5)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	assert.Equal(t, MatchBruteforce, cover[0].Type)
	assert.InDelta(t, 5*math.Log2(26), res.Entropy(), 1e-9)
}

func TestDigitsRun(t *testing.T) {
	res := estimate(t, testAnalyzer(), "a8675309z")
	assertCover(t, res, 9)

	var digits *Match
	for _, m := range res.Cover() {
		if m.Type == MatchDigits {
			digits = m
		}
	}
	if !assert.NotNil(t, digits) {
		t.FailNow()
	}
	assert.Equal(t, 1, digits.I)
	assert.Equal(t, 7, digits.J)
	assert.InDelta(t, 7*math.Log2(10), digits.Entropy, 1e-9)
}

func TestUsageErrors(t *testing.T) {
	a := testAnalyzer()

	_, err := a.Estimate(nil, nil, nil)
	assert.Equal(t, ErrPasswordLength, err)

	long := make([]byte, MaxPasswordLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = a.Estimate(long, nil, nil)
	assert.Equal(t, ErrPasswordLength, err)

	max := long[:MaxPasswordLen]
	_, err = a.Estimate(max, nil, nil)
	assert.NoError(t, err)
}

func TestMatchCap(t *testing.T) {
	a := New(Options{Symbols: testSymbols, MaxMatches: 1})
	_, err := a.Estimate([]byte("1qaz2wsx"), nil, nil)
	assert.Equal(t, ErrMatchLimit, err)

	a = New(Options{Symbols: testSymbols, MaxMatches: 1024})
	_, err = a.Estimate([]byte("1qaz2wsx"), nil, nil)
	assert.NoError(t, err)
}

func TestCoverInvariantsAcrossInputs(t *testing.T) {
	a := testAnalyzer()
	dict := a.AddDictionary("common")
	for rank, word := range []string{"password", "letmein", "dragon", "monkey"} {
		dict.AddWord(word, rank+1)
	}

	passwords := []string{
		"a",
		"ab",
		"password",
		"Password1",
		"qwertyuiop",
		"11/03/1985",
		"19850311",
		"zzzzzzzzzz",
		"abcdefg123",
		"dragonmonkey",
		"x$%j10.9/11a",
		"  spaced out  ",
		"\x00\x01\x02\x03",
	}
	for _, p := range passwords {
		res := estimate(t, a, p)
		assertCover(t, res, len(p))
	}
}

func TestDictionaryNeverWorsens(t *testing.T) {
	plain := testAnalyzer()

	withDict := testAnalyzer()
	dict := withDict.AddDictionary("common")
	dict.AddWord("dragon", 1)

	for _, p := range []string{"dragon", "dragons", "xdragonx", "DRAGON99"} {
		base := estimate(t, plain, p)
		helped := estimate(t, withDict, p)
		assert.LessOrEqual(t, helped.Entropy(), base.Entropy(), "password %q", p)
	}
}

func TestExactDictionaryWord(t *testing.T) {
	a := testAnalyzer()
	a.AddDictionary("common").AddWord("password", 1)

	res := estimate(t, a, "password")
	assertCover(t, res, 8)

	cover := res.Cover()
	if !assert.Len(t, cover, 1) {
		t.FailNow()
	}
	assert.Equal(t, MatchDict, cover[0].Type)
	assert.Equal(t, 1, cover[0].Rank)
	assert.LessOrEqual(t, res.Entropy(), 8*math.Log2(26))
}

func TestDictionaryWithTrailingDigit(t *testing.T) {
	a := testAnalyzer()
	a.AddDictionary("common").AddWord("password", 1)

	res := estimate(t, a, "Password1")
	assertCover(t, res, 9)

	cover := res.Cover()
	if !assert.Len(t, cover, 2) {
		t.FailNow()
	}
	m := cover[0]
	assert.Equal(t, MatchDict, m.Type)
	assert.Equal(t, 7, m.J)
	// log2(rank 1) plus the single-initial-uppercase bump.
	assert.InDelta(t, 1.0, m.Entropy, 1e-9)
	// The digits matcher needs three digits, so the trailing "1" is
	// bruteforce.
	assert.Equal(t, MatchBruteforce, cover[1].Type)
}
