package config

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/meta"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	LogLevel   string           `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	Play       PlayConfig       `yaml:"play"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// PlayConfig is a single game between two agents.
type PlayConfig struct {
	Size     int                 `yaml:"size" validate:"gte=2,lte=16"`
	MaxMoves int                 `yaml:"max_moves" validate:"gte=1"`
	Seed     uint64              `yaml:"seed"`
	Red      metrics.AgentConfig `yaml:"red"`
	Blue     metrics.AgentConfig `yaml:"blue"`
}

// ExperimentConfig runs Games games for every match-up. A match-up names two
// agent IDs; the agents swap colours from game to game.
type ExperimentConfig struct {
	Name     string                `yaml:"name" validate:"required"`
	Dir      string                `yaml:"dir" validate:"required"`
	Games    int                   `yaml:"games" validate:"gte=1"`
	Size     int                   `yaml:"size" validate:"gte=2,lte=16"`
	MaxMoves int                   `yaml:"max_moves" validate:"gte=1"`
	Seed     uint64                `yaml:"seed"`
	Agents   []metrics.AgentConfig `yaml:"agents" validate:"min=1,dive"`
	MatchUps [][]int               `yaml:"match_ups" validate:"min=1,dive,len=2"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.DEPTH, Goroutines: 1}
	return Config{
		LogLevel: "info",
		Play: PlayConfig{
			Size:     meta.BOARD_SIZE,
			MaxMoves: meta.MAX_MOVES,
			Seed:     1,
			Red:      baseline,
			Blue:     metrics.AgentConfig{ID: 1, Depth: 1, Goroutines: 1, Random: true},
		},
		Experiment: ExperimentConfig{
			Name:     "depth",
			Dir:      "experiments",
			Games:    meta.GAMES,
			Size:     meta.BOARD_SIZE,
			MaxMoves: meta.MAX_MOVES,
			Seed:     1,
			Agents: []metrics.AgentConfig{
				baseline,
				{ID: 1, Depth: 1, Goroutines: 1, Random: true},
				{ID: 2, Depth: 2, Goroutines: 1, RandomTies: true},
				{ID: 3, Depth: meta.DEPTH, Goroutines: meta.GO_ROUTINES, RandomTies: true},
			},
			MatchUps: [][]int{{0, 1}, {0, 2}, {0, 3}},
		},
	}
}

// Load reads path over Default with priority env > file > defaults. An empty
// path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&config)

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) {
	if v := os.Getenv("JUMP61_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("JUMP61_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Play.Seed = seed
			config.Experiment.Seed = seed
		}
	}
}

// Validate checks field ranges and that every match-up names known agents.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	ids := make(map[int]bool, len(c.Experiment.Agents))
	for _, agent := range c.Experiment.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true
	}
	for _, matchUp := range c.Experiment.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("match-up %v names unknown agent id %d", matchUp, id)
			}
		}
	}
	return nil
}

// Agent returns the experiment agent with the given ID.
func (c ExperimentConfig) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}
