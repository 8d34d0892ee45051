package strength

import (
	"fmt"
	"math"

	"github.com/coregx/ahocorasick"
)

// Dictionary is a named, rank-ordered word list registered on an Analyzer.
// Words are stored in a prefix tree over packed bytes, so lookups tolerate
// case and leet variants of the stored words.
type Dictionary struct {
	name     string
	analyzer *Analyzer
	root     *trieNode
}

// trieNode fans out by packed-byte index. rank is 0 for non-terminal nodes,
// otherwise the best (smallest) 1-based frequency rank seen for the word
// ending here.
type trieNode struct {
	children []*trieNode
	rank     int
}

// AddDictionary registers a new empty dictionary under the given name.
// Registration mutates the Analyzer and must not run concurrently with
// evaluations.
func (a *Analyzer) AddDictionary(name string) *Dictionary {
	d := &Dictionary{
		name:     name,
		analyzer: a,
		root:     newTrieNode(a.packSize),
	}
	a.dicts = append(a.dicts, d)
	return d
}

// Name returns the name the dictionary was registered under.
func (d *Dictionary) Name() string {
	return d.name
}

func newTrieNode(fanout int) *trieNode {
	return &trieNode{children: make([]*trieNode, fanout)}
}

// AddWord inserts word with the given 1-based rank. It reports false without
// inserting when the pure-alphabetic bruteforce space for the word's length
// is smaller than the rank (such a word is cheaper to bruteforce than to look
// up), or when the word contains bytes outside the packed alphabet. Inserting
// a word twice keeps the smaller rank.
func (d *Dictionary) AddWord(word string, rank int) bool {
	packed := d.analyzer.packString(word)
	if len(packed) > MaxPasswordLen {
		packed = packed[:MaxPasswordLen]
	}
	if len(packed) == 0 || math.Pow(26, float64(len(packed))) < float64(rank) {
		return false
	}

	node := d.root
	for i, b := range packed {
		if b == packSentinel {
			return false
		}
		child := node.children[b]
		if child == nil {
			child = newTrieNode(d.analyzer.packSize)
			node.children[b] = child
		}
		if i == len(packed)-1 {
			if child.rank == 0 || child.rank > rank {
				child.rank = rank
			}
		}
		node = child
	}
	return true
}

// matchDict emits dictionary hits over the packed password: first every
// non-overlapping occurrence of each ad-hoc word at rank 1, then every
// positive-rank prefix hit of every registered dictionary from every start
// position.
func (r *Result) matchDict(password []byte, words []string) error {
	a := r.analyzer
	packed := a.pack(password)

	for _, w := range words {
		if len(w) == 0 || len(password) < len(w) {
			continue
		}
		packedWord := a.packString(w)

		builder := ahocorasick.NewBuilder()
		builder.AddPattern(packedWord)
		auto, err := builder.Build()
		if err != nil {
			return fmt.Errorf("building word automaton: %s", err)
		}

		at := 0
		for at+len(packedWord) <= len(packed) {
			m := auto.Find(packed, at)
			if m == nil {
				break
			}
			if err := r.push(Match{Type: MatchDict, I: m.Start, J: m.End - 1, Rank: 1}); err != nil {
				return err
			}
			at = m.End
		}
	}

	for _, d := range a.dicts {
		for i := 0; i < len(packed); i++ {
			node := d.root
			for j := i; j < len(packed); j++ {
				b := packed[j]
				if b == packSentinel {
					break
				}
				child := node.children[b]
				if child == nil {
					break
				}
				if child.rank > 0 {
					if err := r.push(Match{Type: MatchDict, I: i, J: j, Rank: child.rank}); err != nil {
						return err
					}
				}
				node = child
			}
		}
	}

	return nil
}
