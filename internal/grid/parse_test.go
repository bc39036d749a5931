package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleForest = `30373
25512
65332
33549
35390
`

func TestParseDigits(t *testing.T) {
	g, err := ParseDigits(sampleForest)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())

	v, err := g.Get(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), v)

	assert.Equal(t, sampleForest, g.String())
}

func TestParseDigitsCRLF(t *testing.T) {
	g, err := ParseDigits("12\r\n34\r\n")
	require.NoError(t, err)
	v, err := g.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), v)
}

func TestParseDigitsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"empty input", "", 0, 0},
		{"only newline", "\n", 0, 0},
		{"width mismatch", "12345\n1234\n", 2, 0},
		{"blank line inside", "123\n\n123\n", 2, 0},
		{"leading blank line", "\n123\n", 1, 0},
		{"non digit", "123\n1x3\n", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDigits(tt.input)
			require.ErrorIs(t, err, ErrMalformedInput)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tt.line, gerr.Line)
			assert.Equal(t, tt.column, gerr.Column)
		})
	}
}

func TestParseDigitsWidthMismatchNamesLine(t *testing.T) {
	_, err := ParseDigits("12345\n1234")
	require.Error(t, err)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "1234", gerr.Token)
	assert.Contains(t, err.Error(), "line 2")
}
