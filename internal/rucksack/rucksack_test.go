package rucksack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestPriority(t *testing.T) {
	for c, want := range map[byte]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52, 'p': 16, 'L': 38} {
		got, err := Priority(c)
		require.NoError(t, err)
		assert.Equal(t, want, got, string(c))
	}
	_, err := Priority('[')
	assert.Error(t, err)
}

func TestSolver(t *testing.T) {
	one, err := Solver{}.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, "157", one)

	two, err := Solver{}.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, "70", two)
}

func TestNoDuplicate(t *testing.T) {
	_, err := Solver{}.PartOne("abcd\n")
	assert.Error(t, err)
}

func TestIncompleteGroup(t *testing.T) {
	_, err := Solver{}.PartTwo("ab\nbc\n")
	assert.Error(t, err)
}
