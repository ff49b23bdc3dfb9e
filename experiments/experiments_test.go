package experiments

import (
	"encoding/csv"
	"jump61/config"
	"jump61/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	searching := metrics.AgentConfig{ID: 1, Depth: 1, Goroutines: 1}
	random := metrics.AgentConfig{ID: 2, Depth: 1, Goroutines: 1, Random: true}
	e := Experiment{
		Name:     "smoke",
		Dir:      t.TempDir(),
		Games:    2,
		Size:     3,
		MaxMoves: 60,
		Seed:     4,
		Configs:  []metrics.AgentConfig{searching, random},
		MatchUps: [][]metrics.AgentConfig{{searching, random}},
	}

	dir, err := Run(e)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(e.Dir, "smoke"), filepath.Dir(dir))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3)
	require.Equal(t, []string{"1", "2"}, games[1][1:3], "first game: agent 1 plays red")
	require.Equal(t, []string{"2", "1"}, games[2][1:3], "second game: colours swap")
	require.NotEqual(t, games[1][0], games[2][0], "games get distinct ids")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 2)
	require.Equal(t, games[1][0], moves[1][0])
}

func TestFromConfig(t *testing.T) {
	t.Run("resolves match-ups", func(t *testing.T) {
		c := config.Default().Experiment
		e, err := FromConfig(c)
		require.NoError(t, err)
		require.Len(t, e.MatchUps, len(c.MatchUps))
		for i, ids := range c.MatchUps {
			require.Equal(t, ids[0], e.MatchUps[i][0].ID)
			require.Equal(t, ids[1], e.MatchUps[i][1].ID)
		}
	})

	t.Run("unknown agent", func(t *testing.T) {
		c := config.Default().Experiment
		c.MatchUps = [][]int{{0, 42}}
		_, err := FromConfig(c)
		require.Error(t, err)
	})
}

func TestThroughputExperiment(t *testing.T) {
	e := ThroughputExperiment("out", 3)
	require.Len(t, e.MatchUps, 4)
	for _, matchUp := range e.MatchUps {
		require.Equal(t, 1, matchUp[0].Goroutines, "baseline is sequential")
		require.Equal(t, matchUp[0].Depth, matchUp[1].Depth)
	}
	require.Len(t, e.Configs, 5)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
