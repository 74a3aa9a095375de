// Package stats computes letter frequency tables over a word list.
//
// Both computations are pure: the caller's slice is only read.
package stats

import "github.com/robalobadob/wordle/apps/wordlesim/internal/words"

// PositionTable maps a position (0..4) to per-letter occurrence counts at
// that position.
type PositionTable [words.Length]map[byte]int

// At returns how many words had letter c at position pos.
func (t PositionTable) At(pos int, c byte) int {
	return t[pos][c]
}

// FrequencyTable maps every letter a–z to its occurrence count across all
// positions of all words. Unseen letters map to zero.
type FrequencyTable map[byte]int

// Positions counts letters per position. Words shorter than words.Length
// only contribute the positions they have.
func Positions(list []string) PositionTable {
	var t PositionTable
	for pos := range t {
		t[pos] = make(map[byte]int)
	}
	for _, w := range list {
		for pos := 0; pos < words.Length && pos < len(w); pos++ {
			t[pos][w[pos]]++
		}
	}
	return t
}

// Frequencies counts every a–z letter across list. A word containing any
// other character contributes nothing and is returned in excluded, once, in
// list order; deciding whether to discard it is left to the caller.
func Frequencies(list []string) (FrequencyTable, []string) {
	t := make(FrequencyTable, 26)
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = 0
	}

	var excluded []string
	seen := make(map[string]bool)
	for _, w := range list {
		if !lowerASCII(w) {
			if !seen[w] {
				seen[w] = true
				excluded = append(excluded, w)
			}
			continue
		}
		for i := 0; i < len(w); i++ {
			t[w[i]]++
		}
	}
	return t, excluded
}

func lowerASCII(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
