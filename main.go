package main

import (
	"errors"
	"fmt"
	"jump61/config"
	"jump61/engine"
	"jump61/experiments"
	"jump61/game"
	"jump61/player"
	"jump61/searcher/agent"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfg        config.Config
	configPath string
	logLevel   string

	size     int
	depth    int
	maxMoves int
	seed     uint64
	human    string

	preset string
	games  int
	dir    string
)

var (
	rootCmd = &cobra.Command{
		Use:               "jump61",
		Short:             "Play and study the jump61 chain-reaction game",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play one game between two agents, or against one of them",
		RunE:  runPlay,
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run match-ups between agents and write CSV records",
		RunE:  runExperiment,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	playCmd.Flags().IntVar(&size, "size", 0, "Board size")
	playCmd.Flags().IntVar(&depth, "depth", 0, "Search depth of both searching agents")
	playCmd.Flags().IntVar(&maxMoves, "max-moves", 0, "Moves before the game is abandoned")
	playCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for tie-breaks and random agents")
	playCmd.Flags().StringVar(&human, "human", "", "Side played from stdin (red or blue)")
	rootCmd.AddCommand(playCmd)

	experimentCmd.Flags().StringVar(&preset, "preset", "config", "Experiment to run (config, throughput)")
	experimentCmd.Flags().IntVar(&games, "games", 0, "Games per match-up")
	experimentCmd.Flags().StringVar(&dir, "dir", "", "Output directory")
	rootCmd.AddCommand(experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("jump61 failed")
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	cfg = c
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	play := cfg.Play
	if size > 0 {
		play.Size = size
	}
	if depth > 0 {
		play.Red.Depth = depth
		play.Blue.Depth = depth
	}
	if maxMoves > 0 {
		play.MaxMoves = maxMoves
	}
	if cmd.Flags().Changed("seed") {
		play.Seed = seed
	}

	agents := []agent.Agent{
		experiments.NewAgent(play.Red, play.Seed),
		experiments.NewAgent(play.Blue, play.Seed+1),
	}
	if human != "" {
		side, ok := game.ParseSide(strings.ToLower(human))
		if !ok {
			return fmt.Errorf("unknown side %q", human)
		}
		humanPlayer := player.NewPlayer(cmd.InOrStdin(), cmd.OutOrStdout())
		if side == game.Red {
			agents[0] = humanPlayer
		} else {
			agents[1] = humanPlayer
		}
	}

	e, err := engine.LocalEngine(agents, play.Size, play.MaxMoves)
	if err != nil {
		return err
	}

	winner, gameMetric, _, err := e.Run()
	if errors.Is(err, player.ErrQuit) {
		log.Info().Msg("game abandoned")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, e.Board.DisplayString())
	if winner == game.None {
		fmt.Fprintf(out, "No winner after %d moves.\n", gameMetric.TotalMoves)
	} else {
		fmt.Fprintf(out, "%s wins after %d moves.\n", capitalize(winner.String()), gameMetric.TotalMoves)
	}
	logTotals()
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	var e experiments.Experiment
	switch preset {
	case "config":
		var err error
		e, err = experiments.FromConfig(cfg.Experiment)
		if err != nil {
			return err
		}
	case "throughput":
		e = experiments.ThroughputExperiment(cfg.Experiment.Dir, cfg.Experiment.Games)
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
	if games > 0 {
		e.Games = games
	}
	if dir != "" {
		e.Dir = dir
	}

	out, err := experiments.Run(e)
	if err != nil {
		return err
	}
	log.Info().Msgf("wrote %s experiment to %s", e.Name, out)
	logTotals()
	return nil
}

// logTotals logs the counters exported by the searchers and engine.
func logTotals() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Warn().Err(err).Msg("failed to gather metrics")
		return
	}
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "jump61_") {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := []string{}
			for _, label := range m.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				log.Info().Msgf("%s{%s} %.0f", family.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				log.Info().Msgf("%s{%s} count=%d sum=%.3fs", family.GetName(), strings.Join(labels, ","), h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
