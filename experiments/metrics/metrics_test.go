package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 3)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddCutoff()
			}()
		}
		wg.Wait()

		metric := c.Complete(7)
		require.Equal(t, 400, metric.Nodes)
		require.Equal(t, 400, metric.Leaves)
		require.Equal(t, 4, metric.Cutoffs)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 7, metric.Score)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddNode()
		c.Start(1, 1)
		require.Zero(t, c.Complete(0).Nodes)
	})

	t.Run("dummy collector keeps the score only", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 4)
		c.AddNode()
		require.Equal(t, SearchMetric{Score: -3}, c.Complete(-3))
	})

	t.Run("prometheus collector passes metrics through", func(t *testing.T) {
		c := NewPrometheusCollector("test", NewCollector())
		c.Start(1, 2)
		c.AddNode()
		c.AddCutoff()
		metric := c.Complete(1)
		require.Equal(t, 1, metric.Nodes)
		require.Equal(t, 1, metric.Cutoffs)
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "depth"), filepath.Dir(w.Dir()))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 4, Goroutines: 2, RandomTies: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Red:  1,
		Blue: 2,
		GameMetric: GameMetric{
			ID: "g1", Size: 4, Winner: "red",
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 12,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       "g1",
		MoveMetric: MoveMetric{Step: 1, Side: "red", Index: 5, SearchMetric: SearchMetric{Depth: 4, Nodes: 10}},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "depth", "goroutines", "random_ties", "random"},
		{"1", "4", "2", "true", "false"},
	}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"g1", "1", "2", "4", "red", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"g1", "1", "red", "5", "0", "4", "0s", "10", "0", "0", "0"}, moves[1])
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
