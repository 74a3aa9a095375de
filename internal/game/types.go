// apps/wordlesim/internal/game/types.go
//
// Core type definitions for the guessing simulator.
// Defines:
//   - Mark: per-letter feedback for a guess (hit/present/miss).
//   - State: where a simulated game ended up.
//   - Result: the outcome record of a simulated game.

package game

import (
	"errors"
	"strings"
)

// ErrMalformedWord reports a guess or target that is not five lowercase
// letters a–z.
var ErrMalformedWord = errors.New("game: malformed word")

// Mark represents the evaluation result for a single letter in a guess.
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target at some other position.
//   - "miss":    letter does not exist in the target at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Pattern renders marks as a compact string: G for hit, Y for present,
// _ for miss.
func Pattern(marks []Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case MarkHit:
			b.WriteByte('G')
		case MarkPresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// State is the phase of a simulated game.
type State int

const (
	Guessing State = iota
	Solved
	Failed
	NotInCorpus
)

func (s State) String() string {
	switch s {
	case Guessing:
		return "guessing"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	case NotInCorpus:
		return "not_in_corpus"
	}
	return "unknown"
}

// Result is the outcome of one simulated game.
//
// Tries follows the reporting convention of the batch drivers:
// solved → guesses used, not in corpus → 0, failed → try budget + 1.
type Result struct {
	FinalGuess string   // solved: the target; not in corpus: the target; failed: ""
	Tries      int      // see above
	State      State    // terminal state
	Guesses    []string // every word guessed, in order
}
