// apps/wordlesim/internal/report/report.go
//
// Terminal tables for rankings, game traces and batch summaries.
//
// Every table uses the light box style with a centred title.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/batch"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/score"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/store"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
		t.Style().Title.Align = text.AlignCenter
		// keep titles wider than the columns on one line
		t.Style().Size.WidthMin = text.StringWidthWithoutEscSequences(title) + 4
	}
	return t
}

// Ranking prints entries with their rank.
func Ranking[T score.Number](w io.Writer, title string, entries []score.Entry[T]) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"#", "Word", "Score"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Word, formatScore(e.Score)})
	}
	t.Render()
}

// Words prints a plain numbered word list.
func Words(w io.Writer, title string, list []string) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"#", "Word"})
	for i, s := range list {
		t.AppendRow(table.Row{i + 1, s})
	}
	t.Render()
}

// Game prints the guesses of one simulated game and its outcome.
func Game(w io.Writer, target string, r game.Result) {
	t := newTable(w, "target "+target)
	t.AppendHeader(table.Row{"Try", "Guess"})
	for i, g := range r.Guesses {
		t.AppendRow(table.Row{i + 1, g})
	}
	t.AppendFooter(table.Row{r.State.String(), fmt.Sprintf("tries=%d", r.Tries)})
	t.Render()
}

// Summary prints one batch summary.
func Summary(w io.Writer, s batch.Summary) {
	t := newTable(w, "opener "+s.First)
	t.AppendHeader(table.Row{"Games", "Solved", "Failed", "Not in corpus", "Average"})
	avg := "n/a"
	if s.OK {
		avg = fmt.Sprintf("%.3f", s.Average)
	}
	t.AppendRow(table.Row{s.Games, s.Solved, s.Failed, s.NotInCorpus, avg})
	t.Render()
}

// Tallies prints per-target histograms for each opening word: best, worst,
// average and the share of games over budget.
func Tallies(w io.Writer, tallies []store.Tally, budget int) {
	t := newTable(w, "per target")
	t.AppendHeader(table.Row{"Opener", "Target", "Games", "Best", "Worst", "Average", "Over budget", "Histogram"})
	for _, tl := range tallies {
		avg := "n/a"
		if a, ok := tl.Average(); ok {
			avg = fmt.Sprintf("%.2f", a)
		}
		t.AppendRow(table.Row{
			tl.Opener, tl.Target, tl.Games(), tl.Best(), tl.Worst(), avg,
			fmt.Sprintf("%.1f%%", 100*float64(tl.Failures(budget))/float64(max(tl.Games(), 1))),
			histogram(tl.Histogram, budget+1),
		})
	}
	t.Render()
}

// histogram renders bucket counts 0..top as "n0 n1 ... ntop".
func histogram(h map[int]int, top int) string {
	parts := make([]string, 0, top+1)
	for i := 0; i <= top; i++ {
		parts = append(parts, fmt.Sprint(h[i]))
	}
	return strings.Join(parts, " ")
}

func formatScore[T score.Number](v T) string {
	switch x := any(v).(type) {
	case float32, float64:
		return fmt.Sprintf("%.3f", x)
	}
	return fmt.Sprint(v)
}
