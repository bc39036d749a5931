package rps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "A Y\nB X\nC Z\n"

func TestPlayTable(t *testing.T) {
	shapes := []Shape{Rock, Paper, Scissors}
	want := [3][3]Outcome{
		{Draw, Win, Lose},
		{Lose, Draw, Win},
		{Win, Lose, Draw},
	}
	for _, opp := range shapes {
		for _, you := range shapes {
			assert.Equal(t, want[opp][you], Play(opp, you), "opp=%d you=%d", opp, you)
		}
	}
}

func TestChooseInvertsPlay(t *testing.T) {
	for _, opp := range []Shape{Rock, Paper, Scissors} {
		for _, out := range []Outcome{Lose, Draw, Win} {
			assert.Equal(t, out, Play(opp, Choose(opp, out)))
		}
	}
}

func TestSolver(t *testing.T) {
	one, err := Solver{}.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, "15", one)

	two, err := Solver{}.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, "12", two)
}

func TestBadRounds(t *testing.T) {
	for _, in := range []string{"A\n", "D X\n", "A W\n", "A X Y\n"} {
		_, err := Solver{}.PartOne(in)
		assert.Error(t, err, in)
	}
}
