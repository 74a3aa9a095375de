// apps/wordlesim/internal/score/openers.go
//
// Opening-word searches built on the frequency score.

package score

import (
	"github.com/robalobadob/wordle/apps/wordlesim/internal/stats"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/words"
)

// Next returns the word of list with the highest letter frequency score
// among those sharing no letter with skip. Frequencies are counted over
// that reduced list. ok is false when no word survives.
func Next(list []string, skip string) (string, bool) {
	pool := words.Filter(list, words.Filters{SkipLetters: skip})
	if len(pool) == 0 {
		return "", false
	}
	freq, _ := stats.Frequencies(pool)
	top := Top(ByFrequency(pool, freq), 1)
	return top[0], true
}

// Consecutive picks up to rounds opening words that share no letters,
// each the best frequency word of what remains. It stops early once every
// remaining word overlaps a previous pick.
func Consecutive(list []string, rounds int) []string {
	var (
		picks []string
		used  string
	)
	for i := 0; i < rounds; i++ {
		w, ok := Next(list, used)
		if !ok {
			break
		}
		picks = append(picks, w)
		used += w
	}
	return picks
}
