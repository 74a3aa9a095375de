// apps/wordlesim/internal/batch/batch.go
//
// Batch drivers that average simulated try counts.
//
// Responsibilities:
//   - Play one opening word against every target (TestWord).
//   - Repeat that over several runs and average the averages (MultiRun).
//   - Compare several opening words by their averages (RankOpeners).
//
// Averaging rules:
//   - Games reporting 0 tries (target not reachable from the corpus) are
//     left out of the denominator.
//   - When every game reports 0 the average is undefined (ok == false).
//
// Runs are independent. Each game gets its own seeded random source keyed by
// target, run and how many times the target already appeared in the list,
// so the outcome does not depend on Workers and a repeated answer is an
// independent draw.

package batch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/score"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/seed"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/store"
)

// Runner plays batches of simulated games over a shared corpus.
type Runner struct {
	Words    []string          // guesser corpus, shared read-only by all games
	MaxTries int               // try budget per game; 0 means game.DefaultMaxTries
	Workers  int               // concurrent games; values below 1 mean 1
	Seed     int64             // base seed for per-run random sources
	Tally    store.Store       // optional; every result is recorded here
	OnGame   func(game.Result) // optional; called from worker goroutines
	Log      zerolog.Logger
}

// Summary describes one pass of an opening word over a target list.
type Summary struct {
	First       string
	Games       int
	Counted     int // games with non-zero tries
	Solved      int
	Failed      int
	NotInCorpus int
	Average     float64
	OK          bool // false when Counted == 0
}

// Average is the mean of the non-zero try counts of results.
func Average(results []game.Result) (float64, bool) {
	n := lo.CountBy(results, func(r game.Result) bool { return r.Tries != 0 })
	if n == 0 {
		return 0, false
	}
	sum := lo.SumBy(results, func(r game.Result) int { return r.Tries })
	return float64(sum) / float64(n), true
}

// Summarize tallies results by terminal state.
func Summarize(first string, results []game.Result) Summary {
	avg, ok := Average(results)
	return Summary{
		First:       first,
		Games:       len(results),
		Counted:     lo.CountBy(results, func(r game.Result) bool { return r.Tries != 0 }),
		Solved:      lo.CountBy(results, func(r game.Result) bool { return r.State == game.Solved }),
		Failed:      lo.CountBy(results, func(r game.Result) bool { return r.State == game.Failed }),
		NotInCorpus: lo.CountBy(results, func(r game.Result) bool { return r.State == game.NotInCorpus }),
		Average:     avg,
		OK:          ok,
	}
}

// Play runs one game per target with the given run index and returns the
// results in target order.
func (r *Runner) Play(ctx context.Context, first string, targets []string, run int) ([]game.Result, error) {
	results := make([]game.Result, len(targets))
	nth := draws(targets)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim := &game.Simulator{
				Words:    r.Words,
				Rand:     seed.Picker(r.Seed, target, run, nth[i]),
				MaxTries: r.MaxTries,
				Log:      r.Log,
			}
			res, err := sim.Play(target, first)
			if err != nil {
				return fmt.Errorf("play %s: %w", target, err)
			}
			results[i] = res
			if r.Tally != nil {
				if err := r.Tally.Record(ctx, first, target, res); err != nil {
					return fmt.Errorf("record %s: %w", target, err)
				}
			}
			if r.OnGame != nil {
				r.OnGame(res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// draws numbers each target by its earlier occurrences in targets.
func draws(targets []string) []int {
	seen := make(map[string]int, len(targets))
	out := make([]int, len(targets))
	for i, t := range targets {
		out[i] = seen[t]
		seen[t]++
	}
	return out
}

// TestWord plays first against every target once.
func (r *Runner) TestWord(ctx context.Context, first string, targets []string) (Summary, error) {
	results, err := r.Play(ctx, first, targets, 0)
	if err != nil {
		return Summary{}, err
	}
	s := Summarize(first, results)
	r.Log.Info().
		Str("first", first).
		Int("games", s.Games).
		Int("not_in_corpus", s.NotInCorpus).
		Float64("average", s.Average).
		Msg("batch finished")
	return s, nil
}

// MultiRun repeats TestWord for runs passes and averages the per-pass
// averages. Passes without a defined average are skipped.
func (r *Runner) MultiRun(ctx context.Context, first string, targets []string, runs int) (float64, bool, error) {
	var sum float64
	n := 0
	for run := 0; run < runs; run++ {
		results, err := r.Play(ctx, first, targets, run)
		if err != nil {
			return 0, false, err
		}
		if avg, ok := Average(results); ok {
			sum += avg
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

// RankOpeners averages each opening word over runs passes and ranks them
// from fewest to most tries. Openers without a defined average are dropped.
func (r *Runner) RankOpeners(ctx context.Context, openers, targets []string, runs int) ([]score.Entry[float64], error) {
	var out []score.Entry[float64]
	for _, w := range openers {
		avg, ok, err := r.MultiRun(ctx, w, targets, runs)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.Log.Warn().Str("first", w).Msg("no target reachable, opener skipped")
			continue
		}
		out = append(out, score.Entry[float64]{Word: w, Score: avg})
	}
	return score.RankAscending(out), nil
}
