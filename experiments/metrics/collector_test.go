package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mancala/game"
)

func TestCollector(t *testing.T) {
	t.Run("accumulates counters between start and complete", func(t *testing.T) {
		c := NewCollector()
		c.Start(4)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddTerminal()
		c.AddCutoff()
		c.SetScore(game.Score(-3))

		metric := c.Complete()
		require.Equal(t, 4, metric.Depth)
		require.Equal(t, 2, metric.Nodes)
		require.Equal(t, 1, metric.Leaves)
		require.Equal(t, 1, metric.Terminals)
		require.Equal(t, 1, metric.Cutoffs)
		require.Equal(t, game.Score(-3), metric.Score)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("start resets the previous search", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddNode()
		c.AddCutoff()
		c.Complete()

		c.Start(6)
		c.AddNode()

		metric := c.Complete()
		require.Equal(t, 6, metric.Depth)
		require.Equal(t, 1, metric.Nodes)
		require.Zero(t, metric.Cutoffs)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8)
		c.AddNode()
		c.AddLeaf()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	records := []GameRecord{
		{ID: 0, White: 1, Black: 2, GameMetric: GameMetric{Winner: "white", FinalScore: 6, TotalMoves: 41}},
		{ID: 1, White: 2, Black: 1, GameMetric: GameMetric{Winner: "draw", TotalMoves: 38}},
	}
	require.NoError(t, w.WriteGameRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per game")
	require.Equal(t, "winner", rows[0][3])
	require.Equal(t, "white", rows[1][3])
	require.Equal(t, "6", rows[1][4])
}
