package forest

import (
	"testing"

	"advent/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewingDistanceSample(t *testing.T) {
	g, err := grid.ParseDigits(sample)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want Distances
	}{
		{"middle of second row", 2, 1, Distances{Left: 1, Right: 2, Up: 1, Down: 2}},
		{"middle of fourth row", 2, 3, Distances{Left: 2, Right: 2, Up: 2, Down: 1}},
		{"top left corner", 0, 0, Distances{Left: 0, Right: 2, Up: 0, Down: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ViewingDistance[uint8](g, tt.x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestViewingDistanceOutOfBounds(t *testing.T) {
	g, err := grid.ParseDigits(sample)
	require.NoError(t, err)

	_, err = ViewingDistance[uint8](g, 5, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestBestScenicScoreSample(t *testing.T) {
	g, err := grid.ParseDigits(sample)
	require.NoError(t, err)

	best, err := BestScenicScore[uint8](g)
	require.NoError(t, err)
	assert.Equal(t, Spot{X: 2, Y: 3, Score: 8}, best)

	scores, err := ScenicScores[uint8](g)
	require.NoError(t, err)
	s, err := scores.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, s)
}

func TestBestScenicScoreSingleCell(t *testing.T) {
	g, err := grid.ParseDigits("5\n")
	require.NoError(t, err)

	d, err := ViewingDistance[uint8](g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Distances{}, d)

	best, err := BestScenicScore[uint8](g)
	require.NoError(t, err)
	assert.Equal(t, 0, best.Score)
}

func TestEdgeCellsScoreZero(t *testing.T) {
	g, err := grid.ParseDigits(sample)
	require.NoError(t, err)

	scores, err := ScenicScores[uint8](g)
	require.NoError(t, err)
	for x := 0; x < scores.Width(); x++ {
		top, err := scores.Get(x, 0)
		require.NoError(t, err)
		bottom, err := scores.Get(x, scores.Height()-1)
		require.NoError(t, err)
		assert.Zero(t, top)
		assert.Zero(t, bottom)
	}
}
