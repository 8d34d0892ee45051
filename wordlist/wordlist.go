// Package wordlist loads rank-ordered word lists into strength dictionaries.
//
// A list holds one word per line, most common first. Surrounding whitespace
// is trimmed and blank lines are skipped; a word's rank is its 1-based
// position among the non-blank lines.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pwcheck/zxcvbn/strength"
)

// Read feeds the ranked words from r into dict. Words the dictionary refuses
// (rank above the word's bruteforce space) still consume their rank.
func Read(r io.Reader, dict *strength.Dictionary) error {
	scanner := bufio.NewScanner(r)
	rank := 1
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		dict.AddWord(word, rank)
		rank++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failure reading word list: %s", err)
	}
	return nil
}

// ReadFile registers the ranked list at path on the analyzer under name.
func ReadFile(a *strength.Analyzer, name, path string) (*strength.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read from %s: %s", path, err)
	}
	defer f.Close()

	dict := a.AddDictionary(name)
	if err := Read(bufio.NewReader(f), dict); err != nil {
		return nil, fmt.Errorf("failed to load %s: %s", path, err)
	}
	return dict, nil
}
