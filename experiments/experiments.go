package experiments

import (
	"fmt"
	"jump61/config"
	"jump61/engine"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"
	"jump61/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Experiment struct {
	Name     string
	Dir      string
	Games    int // Per match up
	Size     int
	MaxMoves int
	Seed     uint64
	Configs  []metrics.AgentConfig
	MatchUps [][]metrics.AgentConfig
}

// FromConfig resolves the agent IDs of each match-up.
func FromConfig(c config.ExperimentConfig) (Experiment, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, ids := range c.MatchUps {
		matchUp := []metrics.AgentConfig{}
		for _, id := range ids {
			agentConfig, ok := c.Agent(id)
			if !ok {
				return Experiment{}, fmt.Errorf("unknown agent id %d", id)
			}
			matchUp = append(matchUp, agentConfig)
		}
		matchUps = append(matchUps, matchUp)
	}

	return Experiment{
		Name:     c.Name,
		Dir:      c.Dir,
		Games:    c.Games,
		Size:     c.Size,
		MaxMoves: c.MaxMoves,
		Seed:     c.Seed,
		Configs:  c.Agents,
		MatchUps: matchUps,
	}, nil
}

// Run plays every match-up and stores the agent configs, game records and
// move records under <Dir>/<Name>/<timestamp>, which it returns.
func Run(e Experiment) (string, error) {
	writer, err := metrics.NewWriter(e.Dir, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(e.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords, moveRecords, err := runMatchUps(e)
	if err != nil {
		return "", err
	}

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func runMatchUps(e Experiment) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchUp := range e.MatchUps {
		if len(matchUp) != 2 {
			return nil, nil, fmt.Errorf("match-up %d has %d agents, want 2", mi+1, len(matchUp))
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(e.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < e.Games; i++ {
			// Alternate colours so neither agent always moves first
			red, blue := matchUp[0], matchUp[1]
			if i%2 == 1 {
				red, blue = blue, red
			}
			seed := e.Seed + 2*uint64(count)
			count++

			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(e.MatchUps), i+1, e.Games)

			winner, gameMetric, moveMetrics, err := runGame(red, blue, e.Size, e.MaxMoves, seed)
			if err != nil {
				return nil, nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Red:        red.ID,
				Blue:       blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(e.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(e.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return gameRecords, moveRecords, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(red, blue metrics.AgentConfig, size, maxMoves int, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		NewAgent(red, seed),
		NewAgent(blue, seed+1),
	}
	e, err := engine.LocalEngine(agents, size, maxMoves)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	return e.Run()
}

// NewAgent builds the agent described by config. Searching agents export
// their search metrics to Prometheus under "agent<ID>".
func NewAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(seed)
	}
	return agent.NewEvaluationAgent(createMinimax(config), seed)
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.RandomTies {
		options = append(options, searcher.WithRandomTies())
	}

	collector := metrics.NewPrometheusCollector(fmt.Sprintf("agent%d", config.ID), metrics.NewCollector())
	options = append(options, searcher.WithCollector(collector))
	return searcher.NewMinimax(options...)
}
