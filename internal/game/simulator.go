// apps/wordlesim/internal/game/simulator.go
//
// Automated guesser that plays one game at a time against a target.
//
// Turn loop:
//   - Evaluate the current guess and narrow the candidates.
//   - Stop on a terminal state (see Play).
//   - Otherwise draw the next guess uniformly from the survivors.

package game

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/words"
)

// DefaultMaxTries is the classic try budget.
const DefaultMaxTries = 6

// Picker is the random source used to choose the next guess.
// *rand.Rand and *frand.RNG both satisfy it.
type Picker interface {
	Intn(n int) int
}

// Simulator plays automated games over a fixed corpus.
// A Simulator holds no per-game state; Play may be called repeatedly, but
// not concurrently when Rand is not safe for concurrent use.
type Simulator struct {
	Words    []string       // corpus the guesser draws candidates from
	Rand     Picker         // nil uses the math/rand global source
	MaxTries int            // try budget; 0 means DefaultMaxTries
	Log      zerolog.Logger // per-turn trace at debug level
}

// Play guesses first, then keeps guessing uniformly random survivors of the
// constraint filter until one of:
//
//   - the guess is the target → Solved, Tries = guesses used;
//   - no candidate survives → NotInCorpus, Tries = 0;
//   - MaxTries guesses were evaluated → Failed, Tries = MaxTries + 1.
//
// An error is returned only for a malformed target or first guess.
func (s *Simulator) Play(target, first string) (Result, error) {
	if !words.IsWord(target) {
		return Result{}, fmt.Errorf("target %q: %w", target, ErrMalformedWord)
	}
	if !words.IsWord(first) {
		return Result{}, fmt.Errorf("first guess %q: %w", first, ErrMalformedWord)
	}

	maxTries := s.MaxTries
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	pick := s.Rand
	if pick == nil {
		pick = globalRand{}
	}

	st := NewGuessState()
	candidates := slices.Clone(s.Words)
	guess := first
	guessed := []string{first}

	for n := 1; ; n++ {
		if guess == target {
			return Result{FinalGuess: guess, Tries: n, State: Solved, Guesses: guessed}, nil
		}

		marks, err := st.Evaluate(guess, target)
		if err != nil {
			return Result{}, err
		}
		candidates = st.Filter(candidates, guessed)

		s.Log.Debug().
			Str("target", target).
			Str("guess", guess).
			Str("marks", Pattern(marks)).
			Int("try", n).
			Int("remaining", len(candidates)).
			Msg("guess evaluated")

		switch {
		case len(candidates) == 0:
			return Result{FinalGuess: target, Tries: 0, State: NotInCorpus, Guesses: guessed}, nil
		case n >= maxTries:
			return Result{FinalGuess: "", Tries: maxTries + 1, State: Failed, Guesses: guessed}, nil
		}

		guess = candidates[pick.Intn(len(candidates))]
		guessed = append(guessed, guess)
	}
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }
