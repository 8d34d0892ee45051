package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pwcheck/zxcvbn/preader"
)

func TestEstimateReport(t *testing.T) {
	analyzer, err := NewAnalyzer(nil)
	assert.NoError(t, err)

	var out bytes.Buffer
	err = Estimate(&out, analyzer, []string{"qwerty"}, nil)
	assert.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "password: qwerty\n")
	assert.Contains(t, report, "entropy: ")
	assert.Contains(t, report, "\tspatial: qwerty -- ")
}

func TestCheck(t *testing.T) {
	analyzer, err := NewAnalyzer(nil)
	assert.NoError(t, err)

	var out bytes.Buffer
	err = Check(&out, analyzer, preader.NewConstant("abcdef"), nil)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "\tsequence: abcdef -- ")
}

func TestBulk(t *testing.T) {
	analyzer, err := NewAnalyzer(nil)
	assert.NoError(t, err)

	input := "password1\nqwerty helper\n\n"
	var out bytes.Buffer
	err = Bulk(&out, strings.NewReader(input), analyzer)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if !assert.Len(t, lines, 3) {
		t.FailNow()
	}

	type bulkLine struct {
		Password string   `json:"password"`
		Entropy  *float64 `json:"entropy"`
		Error    bool     `json:"error"`
	}

	var first bulkLine
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "password1", first.Password)
	if assert.NotNil(t, first.Entropy) {
		assert.Greater(t, *first.Entropy, 0.0)
	}
	assert.False(t, first.Error)

	var second bulkLine
	assert.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "qwerty", second.Password)
	assert.NotNil(t, second.Entropy)

	// The blank line parses as an empty password, which is a usage error.
	var third bulkLine
	assert.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, "", third.Password)
	assert.True(t, third.Error)
	assert.Nil(t, third.Entropy)
}

func TestBulkEscaping(t *testing.T) {
	analyzer, err := NewAnalyzer(nil)
	assert.NoError(t, err)

	var out bytes.Buffer
	err = Bulk(&out, strings.NewReader("pa\"ss\\word\n"), analyzer)
	assert.NoError(t, err)

	var line struct {
		Password string `json:"password"`
	}
	assert.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "pa\"ss\\word", line.Password)
}

func TestNewAnalyzerWithDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranked.txt")
	err := os.WriteFile(path, []byte("hunter\n"), 0600)
	assert.NoError(t, err)

	analyzer, err := NewAnalyzer([]string{path})
	assert.NoError(t, err)

	var out bytes.Buffer
	err = Estimate(&out, analyzer, []string{"hunter"}, nil)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "\tdict: hunter -- ")
}

func TestNewAnalyzerMissingDictionary(t *testing.T) {
	_, err := NewAnalyzer([]string{filepath.Join(t.TempDir(), "nope.txt")})
	assert.Error(t, err)
}
