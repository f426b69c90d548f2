package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/liminal-ware/querent/internal/config"
	"github.com/liminal-ware/querent/internal/logging"
	"github.com/liminal-ware/querent/internal/reading"
	"github.com/liminal-ware/querent/internal/replay"
	"github.com/liminal-ware/querent/internal/scenes"
	"github.com/liminal-ware/querent/internal/tracelog"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region root

var (
	app    config.App
	logger *zap.Logger

	flagVerbose bool
	flagDB      string
	flagWeights string
	flagSeed    int64
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "querent",
	Short: "a regulated dialogue that surfaces a question worth reading",
	Long: `querent holds a slow, paced dialogue. Each thing you write is measured
for dispersal, intensity, and complexity; the session settles, expands,
contains, or dwells in response. When a question has emerged, the cards
answer it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("db") {
			app.DBPath = flagDB
		}
		if cmd.Flags().Changed("weights") {
			app.WeightsPath = flagWeights
		}
		if cmd.Flags().Changed("seed") {
			app.Seed = flagSeed
		}
		if flagVerbose {
			app.Debug = true
		}
		if flagNoColor {
			app.NoColor = true
		}

		logger, err = logging.New(app.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "querent.db", "path to the readings database")
	rootCmd.PersistentFlags().StringVar(&flagWeights, "weights", "", "YAML weights file overriding the loop defaults")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "deck shuffle seed (0 for time-based)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "plain output without styling")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(readingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion root

// #region session

func runSession() error {
	loop, err := app.Loop()
	if err != nil {
		return err
	}

	store, err := reading.Open(app.DBPath)
	if err != nil {
		return fmt.Errorf("open readings: %w", err)
	}
	defer store.Close()
	if err := tracelog.Ensure(store.DB()); err != nil {
		return err
	}

	seed := app.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	styles := scenes.DefaultStyles()
	if app.NoColor {
		styles = scenes.PlainStyles()
	}

	session := scenes.NewSession(scenes.SessionConfig{
		In:       os.Stdin,
		Out:      os.Stdout,
		Styles:   styles,
		Loop:     loop,
		Rng:      rand.New(rand.NewSource(seed)),
		Readings: store,
		TraceDB:  store.DB(),
		Logger:   logger,
	})
	return session.Run()
}

// #endregion session

// #region assess

var assessCmd = &cobra.Command{
	Use:   "assess [utterance]",
	Short: "print the three variety measures for one utterance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loop, err := app.Loop()
		if err != nil {
			return err
		}
		utterance := strings.Join(args, " ")

		v, err := variety.NewAssessor(loop.Variety).Assess(utterance)
		if err != nil {
			return err
		}
		fmt.Printf("dispersal:  %.3f\n", v.Dispersal)
		fmt.Printf("intensity:  %.3f\n", v.Intensity)
		fmt.Printf("complexity: %.3f\n", v.Complexity)
		fmt.Printf("mean:       %.3f\n", v.Mean())
		return nil
	},
}

// #endregion assess

// #region replay

var replayCmd = &cobra.Command{
	Use:   "replay [fixture.json]",
	Short: "run a recorded session fixture and verify its expectations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := replay.LoadFixture(args[0])
		if err != nil {
			return err
		}
		if f.Description != "" {
			fmt.Printf("%s\n\n", f.Description)
		}

		results, summary := replay.Replay(f, logger)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("[%s] rejected: %v\n", r.TurnID, r.Err)
				continue
			}
			marker := ""
			if r.Override {
				marker = " override"
			}
			fmt.Printf("[%s] %s (%s)%s  d=%.3f i=%.3f c=%.3f\n",
				r.TurnID, r.State, r.Rule, marker,
				r.Variety.Dispersal, r.Variety.Intensity, r.Variety.Complexity)
		}

		fmt.Printf("\nturns=%d overrides=%d failures=%d emerged=%t\n",
			summary.TotalTurns, summary.Overrides, summary.Failures, summary.Emerged)
		if summary.Emerged {
			fmt.Printf("query: %s\n", summary.Query)
		}

		mismatches := replay.Verify(f, results)
		if len(mismatches) > 0 {
			for _, m := range mismatches {
				fmt.Printf("mismatch: %s\n", m)
			}
			return fmt.Errorf("%d expectation(s) failed", len(mismatches))
		}
		if len(f.ExpectedResults) > 0 {
			fmt.Println("all expectations met")
		}
		return nil
	},
}

// #endregion replay

// #region readings

var readingsLimit int

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "list stored readings, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := reading.Open(app.DBPath)
		if err != nil {
			return fmt.Errorf("open readings: %w", err)
		}
		defer store.Close()

		readings, err := store.Recent(readingsLimit)
		if err != nil {
			return err
		}
		if len(readings) == 0 {
			fmt.Println("no readings yet")
			return nil
		}
		for _, r := range readings {
			fmt.Printf("%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Query)
			fmt.Printf("  %s\n\n", strings.Join(r.Cards, " / "))
		}
		return nil
	},
}

func init() {
	readingsCmd.Flags().IntVarP(&readingsLimit, "limit", "n", 10, "number of readings to list")
}

// #endregion readings
