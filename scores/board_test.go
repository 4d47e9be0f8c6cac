package scores_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdeadlock/scores"
)

var day = time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

func scoresOf(b *scores.Board) []int {
	var out []int
	for _, e := range b.Entries() {
		out = append(out, e.Score)
	}

	return out
}

func TestBoard_RecordSortsDescending(t *testing.T) {
	b := scores.NewBoard()
	for _, s := range []int{300, 900, 100, 500} {
		_, kept := b.Record(s, day)
		require.True(t, kept)
	}
	assert.Equal(t, []int{900, 500, 300, 100}, scoresOf(b))

	best, ok := b.Best()
	require.True(t, ok)
	assert.Equal(t, scores.Entry{Score: 900, Date: "2024-03-09"}, best)
}

func TestBoard_TiesKeepOlderFirst(t *testing.T) {
	b := scores.NewBoard()
	b.Record(500, day)
	rank, kept := b.Record(500, day.AddDate(0, 0, 1))
	require.True(t, kept)
	assert.Equal(t, 2, rank)

	e := b.Entries()
	assert.Equal(t, "2024-03-09", e[0].Date)
	assert.Equal(t, "2024-03-10", e[1].Date)
}

func TestBoard_CappedAtTen(t *testing.T) {
	b := scores.NewBoard()
	for s := 1; s <= 12; s++ {
		b.Record(s*100, day)
	}
	require.Equal(t, scores.MaxEntries, b.Len())
	assert.Equal(t, []int{1200, 1100, 1000, 900, 800, 700, 600, 500, 400, 300}, scoresOf(b))

	assert.False(t, b.Qualifies(300))
	rank, kept := b.Record(50, day)
	assert.False(t, kept)
	assert.Zero(t, rank)

	assert.True(t, b.Qualifies(301))
	rank, kept = b.Record(1150, day)
	assert.True(t, kept)
	assert.Equal(t, 2, rank)
	assert.Equal(t, 1000, b.Entries()[3].Score)
	assert.Equal(t, 400, b.Entries()[9].Score)
}

func TestBoard_EmptyBest(t *testing.T) {
	_, ok := scores.NewBoard().Best()
	assert.False(t, ok)
	assert.True(t, scores.NewBoard().Qualifies(0))
}

func TestBoard_SaveLoad(t *testing.T) {
	b := scores.NewBoard()
	b.Record(750, day)
	b.Record(200, day)

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))
	assert.Contains(t, buf.String(), "2024-03-09")

	back, err := scores.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, b.Entries(), back.Entries())
}

func TestLoad_NormalisesHandEditedFile(t *testing.T) {
	doc := "scores:\n" +
		"  - {score: 10, date: \"2024-01-01\"}\n" +
		"  - {score: 30, date: \"2024-01-02\"}\n" +
		"  - {score: 20, date: \"2024-01-03\"}\n"
	b, err := scores.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20, 10}, scoresOf(b))

	_, err = scores.Load(strings.NewReader("scores:\n  - {score: 1, date: yesterday}\n"))
	assert.ErrorIs(t, err, scores.ErrBadEntry)

	_, err = scores.Load(strings.NewReader("scores:\n  - {score: -1, date: \"2024-01-01\"}\n"))
	assert.ErrorIs(t, err, scores.ErrBadEntry)

	b, err = scores.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, b.Len())
}

func TestFile_MissingIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")

	b, err := scores.LoadFile(path)
	require.NoError(t, err)
	assert.Zero(t, b.Len())

	b.Record(400, day)
	require.NoError(t, b.SaveFile(path))

	back, err := scores.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{400}, scoresOf(back))
}
