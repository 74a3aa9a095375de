// apps/wordlesim/commands.go
//
// Command tree for the simulator CLI.
//
//   best         top opening words by combined letter score
//   next         best frequency word avoiding some letters
//   consecutive  sequence of non-overlapping opening words
//   play         one traced game against a target
//   bench        average tries of opening words over an answer list
//
// Every flag can also come from the environment (or a .env file loaded in
// main); see the Sources of each flag.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/robalobadob/wordle/apps/wordlesim/internal/batch"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/game"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/report"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/score"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/seed"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/store"
	"github.com/robalobadob/wordle/apps/wordlesim/internal/words"
)

// Corpus filters per use. Scoring openers wants distinct letters; the
// guesser keeps repeated-letter words so such targets stay reachable.
var (
	openerFilters = words.Filters{SkipPlural: true, SkipPast: true, SkipMultiples: true}
	guessFilters  = words.Filters{SkipPlural: true, SkipPast: true}
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "wordlesim",
		Usage: "score Wordle opening words and simulate an automated guesser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Usage:   "dictionary file, one word per line (e.g. " + words.DefaultDictionary + "); empty uses the built-in list",
				Sources: cli.EnvVars("WORDLE_DICT"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "base random seed; 0 picks one from the clock",
				Sources: cli.EnvVars("WORDLE_SEED"),
			},
			&cli.IntFlag{
				Name:    "max-tries",
				Value:   game.DefaultMaxTries,
				Usage:   "try budget per game",
				Sources: cli.EnvVars("WORDLE_MAX_TRIES"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "trace, debug, info, warn, error",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			lvl, err := zerolog.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, cli.Exit(fmt.Sprintf("bad log level %q", cmd.String("log-level")), 2)
			}
			zerolog.SetGlobalLevel(lvl)
			return ctx, nil
		},
		Commands: []*cli.Command{
			bestCommand(),
			nextCommand(),
			consecutiveCommand(),
			playCommand(),
			benchCommand(),
		},
	}
}

func bestCommand() *cli.Command {
	return &cli.Command{
		Name:  "best",
		Usage: "rank opening words by positional × frequency score",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 10, Usage: "number of words to show"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			list, err := loadCorpus(cmd, openerFilters)
			if err != nil {
				return err
			}
			report.Ranking(cmd.Root().Writer, "best openers", score.Best(list, cmd.Int("count")))
			return nil
		},
	}
}

func nextCommand() *cli.Command {
	return &cli.Command{
		Name:  "next",
		Usage: "best letter-frequency word sharing no letter with --skip",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "skip", Usage: "letters to avoid"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			list, err := loadCorpus(cmd, openerFilters)
			if err != nil {
				return err
			}
			w, ok := score.Next(list, cmd.String("skip"))
			if !ok {
				return cli.Exit("no word avoids "+cmd.String("skip"), 1)
			}
			fmt.Fprintln(cmd.Root().Writer, w)
			return nil
		},
	}
}

func consecutiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "consecutive",
		Usage: "opening words that together cover the most common letters without overlap",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rounds", Aliases: []string{"r"}, Value: 3, Usage: "maximum number of words"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			list, err := loadCorpus(cmd, openerFilters)
			if err != nil {
				return err
			}
			report.Words(cmd.Root().Writer, "consecutive openers", score.Consecutive(list, cmd.Int("rounds")))
			return nil
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "simulate one game against --target",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Required: true, Usage: "hidden word"},
			&cli.StringFlag{Name: "first", Aliases: []string{"f"}, Value: "cares", Usage: "opening guess", Sources: cli.EnvVars("WORDLE_FIRST_GUESS")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			list, err := loadCorpus(cmd, guessFilters)
			if err != nil {
				return err
			}
			target := cmd.String("target")
			sim := &game.Simulator{
				Words:    list,
				Rand:     seed.Picker(baseSeed(cmd), target, 0, 0),
				MaxTries: maxTries(cmd),
				Log:      log.Logger,
			}
			res, err := sim.Play(target, cmd.String("first"))
			if err != nil {
				return err
			}
			log.Info().
				Str("target", target).
				Str("state", res.State.String()).
				Int("tries", res.Tries).
				Msg("game over")
			report.Game(cmd.Root().Writer, target, res)
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "average tries of opening words over an answer list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "first", Aliases: []string{"f"}, Value: "spare", Usage: "opening guess", Sources: cli.EnvVars("WORDLE_FIRST_GUESS")},
			&cli.StringSliceFlag{Name: "openers", Aliases: []string{"o"}, Usage: "rank these opening guesses instead of --first"},
			&cli.IntFlag{Name: "best", Usage: "rank the top N combined-score openers instead of --first"},
			&cli.StringFlag{Name: "answers", Aliases: []string{"a"}, Usage: "answer list file; empty uses the built-in list", Sources: cli.EnvVars("WORDLE_ANSWERS")},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "use only the first N answers (0 = all)"},
			&cli.IntFlag{Name: "runs", Aliases: []string{"r"}, Value: 1, Usage: "passes over the answer list"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: 1, Usage: "concurrent games", Sources: cli.EnvVars("WORDLE_WORKERS")},
			&cli.BoolFlag{Name: "progress", Aliases: []string{"p"}, Usage: "show a progress bar"},
		},
		Action: runBench,
	}
}

func runBench(ctx context.Context, cmd *cli.Command) error {
	list, err := loadCorpus(cmd, guessFilters)
	if err != nil {
		return err
	}
	targets, err := words.Answers(cmd.String("answers"), cmd.Int("count"))
	if err != nil {
		return err
	}
	runs := max(cmd.Int("runs"), 1)

	openers := cmd.StringSlice("openers")
	if n := cmd.Int("best"); n > 0 {
		distinct, err := loadCorpus(cmd, openerFilters)
		if err != nil {
			return err
		}
		openers = score.Words(score.Best(distinct, n))
	}

	tally := store.NewMemoryStore()
	r := &batch.Runner{
		Words:    list,
		MaxTries: maxTries(cmd),
		Workers:  cmd.Int("workers"),
		Seed:     baseSeed(cmd),
		Tally:    tally,
		Log:      log.Logger,
	}

	games := len(targets) * runs * max(len(openers), 1)
	if cmd.Bool("progress") {
		bar := progressbar.NewOptions(games,
			progressbar.OptionSetWriter(cmd.Root().ErrWriter),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		r.OnGame = func(game.Result) { _ = bar.Add(1) }
	}
	log.Info().Int("targets", len(targets)).Int("runs", runs).Int("games", games).Msg("bench started")

	out := cmd.Root().Writer
	switch {
	case len(openers) > 0:
		ranked, err := r.RankOpeners(ctx, openers, targets, runs)
		if err != nil {
			return err
		}
		report.Ranking(out, "average tries by opener", ranked)
	case runs > 1:
		avg, ok, err := r.MultiRun(ctx, cmd.String("first"), targets, runs)
		if err != nil {
			return err
		}
		if !ok {
			return cli.Exit("no target reachable from the corpus", 1)
		}
		fmt.Fprintf(out, "Average tries for %q over %d runs: %.3f\n", cmd.String("first"), runs, avg)
	default:
		s, err := r.TestWord(ctx, cmd.String("first"), targets)
		if err != nil {
			return err
		}
		report.Summary(out, s)
	}

	tallies, err := tally.Tallies(ctx)
	if err != nil {
		return err
	}
	report.Tallies(out, tallies, maxTries(cmd))
	return nil
}

func loadCorpus(cmd *cli.Command, f words.Filters) ([]string, error) {
	list, err := words.Source(cmd.String("dict"), f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dict", cmd.String("dict")).Int("words", len(list)).Msg("corpus loaded")
	return list, nil
}

func maxTries(cmd *cli.Command) int {
	if n := cmd.Int("max-tries"); n > 0 {
		return n
	}
	return game.DefaultMaxTries
}

// baseSeed returns --seed, or a clock-derived seed that is logged so the
// run can be repeated.
func baseSeed(cmd *cli.Command) int64 {
	if s := cmd.Int64("seed"); s != 0 {
		return s
	}
	s := time.Now().UnixNano()
	log.Info().Int64("seed", s).Msg("using clock seed")
	return s
}
