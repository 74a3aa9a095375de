package batch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/store"
)

var corpus = []string{
	"spare", "divan", "vital", "canal", "naval", "mango", "blank", "dough", "chain", "aloft",
	"bight", "fight", "light", "might", "night", "right", "sight", "tight", "wight",
}

func TestAverageSkipsZeros(t *testing.T) {
	avg, ok := Average([]game.Result{{Tries: 3}, {Tries: 0}, {Tries: 7}, {Tries: 2}})
	assert.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)

	_, ok = Average([]game.Result{{Tries: 0}, {Tries: 0}})
	assert.False(t, ok)

	_, ok = Average(nil)
	assert.False(t, ok)
}

func TestTestWord(t *testing.T) {
	tally := store.NewMemoryStore()
	var games int32
	r := &Runner{
		Words:  corpus,
		Seed:   11,
		Tally:  tally,
		OnGame: func(game.Result) { atomic.AddInt32(&games, 1) },
	}

	s, err := r.TestWord(context.Background(), "spare", []string{"divan", "zebra", "mango", "tight"})
	require.NoError(t, err)

	assert.Equal(t, "spare", s.First)
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 1, s.NotInCorpus)
	assert.Equal(t, 3, s.Counted)
	assert.Equal(t, s.Games, s.Solved+s.Failed+s.NotInCorpus)
	assert.True(t, s.OK)
	assert.True(t, s.Average >= 2 && s.Average <= 7)
	assert.EqualValues(t, 4, atomic.LoadInt32(&games))

	tallies, err := tally.Tallies(context.Background())
	require.NoError(t, err)
	assert.Len(t, tallies, 4)
}

func TestResultsDoNotDependOnWorkers(t *testing.T) {
	targets := []string{"bight", "fight", "light", "might", "night", "right", "sight", "tight", "wight", "divan"}
	ctx := context.Background()

	serial := &Runner{Words: corpus, Seed: 5, Workers: 1}
	parallel := &Runner{Words: corpus, Seed: 5, Workers: 4}
	for run := 0; run < 3; run++ {
		a, err := serial.Play(ctx, "wight", targets, run)
		require.NoError(t, err)
		b, err := parallel.Play(ctx, "wight", targets, run)
		require.NoError(t, err)
		assert.Equal(t, a, b, "run %d", run)
	}
}

func TestMultiRun(t *testing.T) {
	r := &Runner{Words: corpus, Seed: 3, Workers: 2}
	avg, ok, err := r.MultiRun(context.Background(), "divan", []string{"divan"}, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, avg, 1e-9)

	_, ok, err = r.MultiRun(context.Background(), "spare", []string{"zebra"}, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRankOpeners(t *testing.T) {
	r := &Runner{Words: corpus, Seed: 9}
	ranked, err := r.RankOpeners(context.Background(), []string{"spare", "divan"}, []string{"divan"}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "divan", ranked[0].Word)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.Greater(t, ranked[1].Score, 1.0)

	ranked, err = r.RankOpeners(context.Background(), []string{"spare"}, []string{"zebra"}, 1)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankOpenersTalliesPerOpener(t *testing.T) {
	tally := store.NewMemoryStore()
	r := &Runner{Words: corpus, Seed: 9, Tally: tally}
	_, err := r.RankOpeners(context.Background(), []string{"spare", "divan"}, []string{"divan"}, 2)
	require.NoError(t, err)

	tallies, err := tally.Tallies(context.Background())
	require.NoError(t, err)
	require.Len(t, tallies, 2)
	assert.Equal(t, "divan", tallies[0].Opener)
	assert.Equal(t, map[int]int{1: 2}, tallies[0].Histogram)
	assert.Equal(t, "spare", tallies[1].Opener)
	assert.Equal(t, 2, tallies[1].Games())
}

func TestDuplicateTargetsDrawIndependently(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 0, 2}, draws([]string{"tight", "light", "tight", "might", "tight"}))
	assert.Empty(t, draws(nil))
}

func TestPlayErrors(t *testing.T) {
	r := &Runner{Words: corpus}
	_, err := r.TestWord(context.Background(), "spare", []string{"DIVAN"})
	assert.ErrorIs(t, err, game.ErrMalformedWord)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.TestWord(ctx, "spare", []string{"divan"})
	assert.ErrorIs(t, err, context.Canceled)
}
