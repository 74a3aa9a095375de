// apps/wordlesim/internal/score/score.go
//
// Word scoring heuristics for picking opening guesses.
//
// Scores:
//   - ByPosition:  sum of how often each letter appears at its position.
//   - ByFrequency: sum of how often each letter appears anywhere
//                  (repeated letters count every time).
//   - Combined:    product of the two, used to rank opening words.
//
// Rankings are stable: equal scores keep their input order.

package score

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/stats"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/words"
)

// Number is any score type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry pairs a word with its score.
type Entry[T Number] struct {
	Word  string
	Score T
}

// ByPosition scores each word of list against a positional table.
func ByPosition(list []string, t stats.PositionTable) []Entry[int] {
	return lo.Map(list, func(w string, _ int) Entry[int] {
		total := 0
		for pos := 0; pos < len(w) && pos < words.Length; pos++ {
			total += t.At(pos, w[pos])
		}
		return Entry[int]{Word: w, Score: total}
	})
}

// ByFrequency scores each word of list against a corpus-wide table.
func ByFrequency(list []string, t stats.FrequencyTable) []Entry[int] {
	return lo.Map(list, func(w string, _ int) Entry[int] {
		total := 0
		for i := 0; i < len(w); i++ {
			total += t[w[i]]
		}
		return Entry[int]{Word: w, Score: total}
	})
}

// Combined builds both tables from list and scores each word by the product
// of its positional and frequency scores. Words the frequency table rejects
// are left out.
func Combined(list []string) []Entry[int] {
	freq, excluded := stats.Frequencies(list)
	if len(excluded) > 0 {
		list = lo.Without(list, excluded...)
	}
	byPos := ByPosition(list, stats.Positions(list))
	byFreq := ByFrequency(list, freq)

	out := make([]Entry[int], len(list))
	for i := range list {
		out[i] = Entry[int]{Word: list[i], Score: byPos[i].Score * byFreq[i].Score}
	}
	return out
}

// Rank returns entries sorted by descending score.
func Rank[T Number](entries []Entry[T]) []Entry[T] {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry[T]) bool { return a.Score > b.Score })
	return out
}

// RankAscending returns entries sorted by ascending score.
func RankAscending[T Number](entries []Entry[T]) []Entry[T] {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry[T]) bool { return a.Score < b.Score })
	return out
}

// Top returns the n highest scoring words. n beyond the list length returns
// every word; n <= 0 returns none.
func Top[T Number](entries []Entry[T], n int) []string {
	if n <= 0 {
		return nil
	}
	ranked := Rank(entries)
	if n > len(ranked) {
		n = len(ranked)
	}
	return Words(ranked[:n])
}

// Words extracts the words of entries in order.
func Words[T Number](entries []Entry[T]) []string {
	return lo.Map(entries, func(e Entry[T], _ int) string { return e.Word })
}

// Best ranks list by combined score and returns the top n words.
func Best(list []string, n int) []Entry[int] {
	ranked := Rank(Combined(list))
	if n < len(ranked) {
		ranked = ranked[:max(n, 0)]
	}
	return ranked
}
