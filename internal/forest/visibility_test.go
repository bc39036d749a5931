package forest

import (
	"errors"
	"testing"

	"advent/internal/grid"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `30373
25512
65332
33549
35390
`

func sliceLine(hs []int) Line[int] {
	return func(i int) (int, error) { return hs[i], nil }
}

func flags(b *grid.Bits) []bool {
	out := make([]bool, 0, b.Len())
	for _, ok := range b.All() {
		out = append(out, ok)
	}
	return out
}

func TestScanLine(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		want    []bool
		peak    int
	}{
		{
			name:    "increasing is visible from the low end",
			heights: []int{1, 2, 3, 4, 5},
			want:    []bool{true, true, true, true, true},
			peak:    5,
		},
		{
			name:    "decreasing is visible from the high end",
			heights: []int{5, 4, 3, 2, 1},
			want:    []bool{true, true, true, true, true},
			peak:    5,
		},
		{
			name:    "interior local minimum is hidden",
			heights: []int{5, 6, 1, 6, 5},
			want:    []bool{true, true, false, true, true},
			peak:    6,
		},
		{
			name:    "equal heights block",
			heights: []int{3, 3, 3, 3},
			want:    []bool{true, false, false, true},
			peak:    3,
		},
		{
			name:    "tall tree near far end seen from near end",
			heights: []int{1, 2, 1, 9, 9},
			want:    []bool{true, true, false, true, true},
			peak:    9,
		},
		{
			name:    "single position",
			heights: []int{4},
			want:    []bool{true},
			peak:    4,
		},
		{
			name:    "two positions",
			heights: []int{4, 0},
			want:    []bool{true, true},
			peak:    4,
		},
		{
			name:    "empty",
			heights: nil,
			want:    []bool{},
			peak:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, peak, err := ScanLine(len(tt.heights), sliceLine(tt.heights))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, flags(got)); diff != "" {
				t.Errorf("visibility mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.peak, peak)
		})
	}
}

func TestScanLinePropagatesAccessorError(t *testing.T) {
	g, err := grid.ParseDigits("123\n456\n")
	require.NoError(t, err)

	// Ask for a longer row than the grid has.
	_, _, err = ScanLine(4, Row[uint8](g, 0))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	var gerr *grid.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, grid.AxisX, gerr.Axis)
	assert.Equal(t, 3, gerr.Got)
}

func TestVisibleSample(t *testing.T) {
	g, err := grid.ParseDigits(sample)
	require.NoError(t, err)

	v, err := Visible[uint8](g)
	require.NoError(t, err)
	assert.Equal(t, "11111\n11101\n11011\n10101\n11111\n", v.String())
	assert.Equal(t, 21, v.Count())

	n, err := CountVisible[uint8](g)
	require.NoError(t, err)
	assert.Equal(t, 21, n)
}

func TestVisibleSingleCell(t *testing.T) {
	g, err := grid.ParseDigits("7")
	require.NoError(t, err)

	n, err := CountVisible[uint8](g)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// slopeSource is a synthetic height map used without building a grid.
type slopeSource struct{ w, h int }

func (s slopeSource) Width() int  { return s.w }
func (s slopeSource) Height() int { return s.h }
func (s slopeSource) Get(x, y int) (int, error) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, errors.New("out of range")
	}
	return x + y, nil
}

func TestVisibleSyntheticSource(t *testing.T) {
	// Heights rise to the bottom-right corner, so every cell is taller than
	// everything to its left: all cells are visible.
	n, err := CountVisible[int](slopeSource{w: 6, h: 4})
	require.NoError(t, err)
	assert.Equal(t, 24, n)
}
