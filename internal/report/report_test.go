package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/batch"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/score"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/store"
)

func TestRanking(t *testing.T) {
	var buf bytes.Buffer
	Ranking(&buf, "best", []score.Entry[int]{{Word: "spare", Score: 110}, {Word: "slate", Score: 100}})
	out := buf.String()
	assert.Contains(t, out, "spare")
	assert.Contains(t, out, "110")
	assert.Less(t, strings.Index(out, "spare"), strings.Index(out, "slate"))

	buf.Reset()
	Ranking(&buf, "", []score.Entry[float64]{{Word: "chain", Score: 3.5}})
	assert.Contains(t, buf.String(), "3.500")
}

func TestGame(t *testing.T) {
	var buf bytes.Buffer
	Game(&buf, "divan", game.Result{FinalGuess: "divan", Tries: 2, State: game.Solved, Guesses: []string{"spare", "divan"}})
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "spare")
	assert.Contains(t, out, "solved")
	assert.Contains(t, out, "tries=2")
}

func TestSummaryAndTallies(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, batch.Summary{First: "spare", Games: 3, Solved: 2, NotInCorpus: 1, Average: 3.25, OK: true})
	assert.Contains(t, buf.String(), "3.250")

	buf.Reset()
	Summary(&buf, batch.Summary{First: "spare", Games: 1, NotInCorpus: 1})
	assert.Contains(t, buf.String(), "n/a")

	buf.Reset()
	Tallies(&buf, []store.Tally{
		{Opener: "chain", Target: "reign", Histogram: map[int]int{2: 1}},
		{Opener: "spare", Target: "reign", Histogram: map[int]int{3: 1, 7: 1}},
	}, 6)
	out := buf.String()
	assert.Contains(t, out, "reign")
	assert.Contains(t, out, "chain")
	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "0 0 0 1 0 0 0 1")
}

func TestWords(t *testing.T) {
	var buf bytes.Buffer
	Words(&buf, "openers", []string{"crane", "mushy"})
	assert.Contains(t, buf.String(), "mushy")
}

func TestTitleWiderThanColumns(t *testing.T) {
	var buf bytes.Buffer
	Words(&buf, "consecutive openers", []string{"alert", "sound"})
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "CONSECUTIVE OPENERS")
	assert.Contains(t, out, "alert")
	assert.Contains(t, out, "sound")
}
