// apps/wordlesim/internal/game/engine.go
//
// Guess constraint engine.
// Responsibilities:
//   - Evaluate a guess against the target and fold the feedback into the
//     accumulated constraints of a run.
//   - Filter a candidate list down to the words still consistent with
//     every constraint seen so far.
//
// Constraints (all letter sets are a–z bitsets):
//   - exact:   per position, the confirmed letter (0 when unknown).
//   - banned:  per position, letters in the target but not there.
//   - valid:   letters known to be somewhere in the target.
//   - invalid: letters known to be absent from the target.
//
// Positions are 0-indexed here; banned[i] is the set for the i-th letter.

package game

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/words"
)

const letters = 26

// GuessState accumulates the feedback of one simulated game.
type GuessState struct {
	exact   [words.Length]byte
	banned  [words.Length]*bitset.BitSet
	valid   *bitset.BitSet
	invalid *bitset.BitSet
}

// NewGuessState returns a state with no constraints.
func NewGuessState() *GuessState {
	s := &GuessState{
		valid:   bitset.New(letters),
		invalid: bitset.New(letters),
	}
	for i := range s.banned {
		s.banned[i] = bitset.New(letters)
	}
	return s
}

// Evaluate scores guess against target and records the feedback.
//
// For each position i:
//   - same letter as the target → exact[i], MarkHit.
//   - letter elsewhere in the target → valid and banned[i], MarkPresent.
//   - letter not in the target → invalid, MarkMiss.
//
// Both words must be five lowercase letters; otherwise ErrMalformedWord is
// returned and the state is left untouched.
func (s *GuessState) Evaluate(guess, target string) ([]Mark, error) {
	if !words.IsWord(guess) {
		return nil, fmt.Errorf("guess %q: %w", guess, ErrMalformedWord)
	}
	if !words.IsWord(target) {
		return nil, fmt.Errorf("target %q: %w", target, ErrMalformedWord)
	}

	marks := make([]Mark, words.Length)
	for i := 0; i < words.Length; i++ {
		c := guess[i]
		switch {
		case c == target[i]:
			s.exact[i] = c
			marks[i] = MarkHit
		case strings.IndexByte(target, c) >= 0:
			s.valid.Set(bit(c))
			s.banned[i].Set(bit(c))
			marks[i] = MarkPresent
		default:
			s.invalid.Set(bit(c))
			marks[i] = MarkMiss
		}
	}
	return marks, nil
}

// Consistent reports whether w satisfies every recorded constraint.
// Whether w was already guessed is not considered here.
func (s *GuessState) Consistent(w string) bool {
	if !words.IsWord(w) {
		return false
	}
	for i := 0; i < words.Length; i++ {
		if s.exact[i] != 0 {
			if w[i] != s.exact[i] {
				return false
			}
			continue
		}
		if s.banned[i].Test(bit(w[i])) {
			return false
		}
	}

	set := letterSet(w)
	if set.IntersectionCardinality(s.valid) != s.valid.Count() {
		return false
	}
	return set.IntersectionCardinality(s.invalid) == 0
}

// Filter returns the candidates consistent with the state that are not in
// guessed, preserving order. The result is never longer than candidates.
func (s *GuessState) Filter(candidates, guessed []string) []string {
	tried := make(map[string]struct{}, len(guessed))
	for _, g := range guessed {
		tried[g] = struct{}{}
	}
	return lo.Filter(candidates, func(w string, _ int) bool {
		if _, ok := tried[w]; ok {
			return false
		}
		return s.Consistent(w)
	})
}

// Constraints is a comparable snapshot of a GuessState.
type Constraints struct {
	Exact   [words.Length]byte
	Banned  [words.Length]string
	Valid   string
	Invalid string
}

// Constraints returns the current constraints with letter sets rendered as
// alphabetically ordered strings.
func (s *GuessState) Constraints() Constraints {
	c := Constraints{
		Exact:   s.exact,
		Valid:   setString(s.valid),
		Invalid: setString(s.invalid),
	}
	for i, b := range s.banned {
		c.Banned[i] = setString(b)
	}
	return c
}

func bit(c byte) uint { return uint(c - 'a') }

func letterSet(w string) *bitset.BitSet {
	b := bitset.New(letters)
	for i := 0; i < len(w); i++ {
		b.Set(bit(w[i]))
	}
	return b
}

func setString(b *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		sb.WriteByte(byte('a' + i))
	}
	return sb.String()
}
