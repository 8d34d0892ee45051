// Package commands implements the CLI actions on top of the strength core.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pwcheck/zxcvbn/preader"
	"github.com/pwcheck/zxcvbn/strength"
	"github.com/pwcheck/zxcvbn/wordlist"
)

// DefaultSymbols is the symbol alphabet the CLI evaluates against.
const DefaultSymbols = "!@#$%^&*()-_+=;:,./?\\|`~[]{}"

// maxBulkWords caps the ad-hoc words accepted per bulk line.
const maxBulkWords = 256

// NewAnalyzer builds an analyzer with the default symbol alphabet and
// registers one ranked dictionary per path.
func NewAnalyzer(dictPaths []string) (*strength.Analyzer, error) {
	analyzer := strength.New(strength.Options{Symbols: DefaultSymbols})
	for _, path := range dictPaths {
		if _, err := wordlist.ReadFile(analyzer, path, path); err != nil {
			return nil, err
		}
	}
	return analyzer, nil
}

// Estimate evaluates each password and writes a report to w: the elapsed
// time, the password, the total entropy, one line per cover entry, and a
// blank line.
func Estimate(w io.Writer, analyzer *strength.Analyzer, passwords, words []string) error {
	for _, password := range passwords {
		start := time.Now()
		res, err := analyzer.Estimate([]byte(password), words, nil)
		if err != nil {
			return fmt.Errorf("estimating %q failed: %s", password, err)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "t:%d us\n", elapsed.Microseconds())
		fmt.Fprintf(w, "password: %s\n", password)
		fmt.Fprintf(w, "entropy: %f\n", res.Entropy())
		for _, m := range res.Cover() {
			fmt.Fprintf(w, "\t%s: %s -- %f\n", m.Type, password[m.I:m.J+1], m.Entropy)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Check reads a single password from pr and writes the estimate report.
func Check(w io.Writer, analyzer *strength.Analyzer, pr preader.PasswordReader, words []string) error {
	password, err := pr.ReadPassword()
	if err != nil {
		return err
	}
	return Estimate(w, analyzer, []string{password}, words)
}

// Bulk evaluates one "password [word ...]" line at a time from r and writes
// one JSON object per line to w: {"password": ..., "entropy": N.N} on
// success, {"password": ..., "error": true} when the evaluation fails. Lines
// that fail do not stop the run.
func Bulk(w io.Writer, r io.Reader, analyzer *strength.Analyzer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), " ")
		password := fields[0]
		words := fields[1:]
		if len(words) > maxBulkWords {
			words = words[:maxBulkWords]
		}

		// json.Marshal of a string cannot fail; it is used here purely
		// for escaping.
		quoted, _ := json.Marshal(password)

		res, err := analyzer.Estimate([]byte(password), words, nil)
		if err != nil {
			fmt.Fprintf(w, "{\"password\": %s, \"error\": true}\n", quoted)
			continue
		}
		fmt.Fprintf(w, "{\"password\": %s, \"entropy\": %.1f}\n", quoted, res.Entropy())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failure reading passwords: %s", err)
	}
	return nil
}
