package metrics

import (
	"encoding/csv"
	"goban/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts nodes and cutoffs per search", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddCutoff()
		metric := c.Complete(1.5)

		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 2, metric.Nodes)
		require.Equal(t, 1, metric.Cutoffs)
		require.Equal(t, 1.5, metric.Value)

		c.Start(1)
		require.Equal(t, 0, c.Complete(0).Nodes, "Start should reset the counters")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete(2))
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 2, TieBreak: 0.1, Local: true}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "depth", "tie_break", "local", "area", "no_pruning"},
			{"1", "2", "0.1", "true", "false", "false"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 0,
			Agent2: 2,
			GameMetric: GameMetric{
				Result:     game.WhiteWins,
				Score:      -7.5,
				AreaScore:  -2.5,
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 12,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "0", "2", "white", "-7.5", "-2.5",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black, Move: 24, SearchMetric: SearchMetric{Depth: 2, Nodes: 30, Cutoffs: 4, Value: 3}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.White, Move: game.Pass}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "black", "24", "2", "0s", "30", "4", "3"}, rows[1])
		require.Equal(t, "-1", rows[2][3])
	})

	t.Run("runs in the same instant get their own directories", func(t *testing.T) {
		dirs := map[string]bool{w.Dir(): true}
		for i := 0; i < 5; i++ {
			other, err := NewWriter(root, "depth")
			require.NoError(t, err)
			require.False(t, dirs[other.Dir()], "directory %s reused", other.Dir())
			dirs[other.Dir()] = true
		}

		entries, err := os.ReadDir(filepath.Join(root, "depth"))
		require.NoError(t, err)
		require.Len(t, entries, 6)
	})

	t.Run("unwritable directory", func(t *testing.T) {
		broken := &Writer{baseDir: filepath.Join(root, "missing", "dir")}
		err := broken.WriteAgentConfigs(nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "agent_configs.csv")
	})
}
