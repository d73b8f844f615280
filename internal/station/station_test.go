package station

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name   string
		supply []int
		cost   []int
		want   int
	}{
		{"rotated start", []int{1, 2, 3, 4, 5}, []int{3, 4, 5, 1, 2}, 3},
		{"not enough fuel", []int{2, 3, 4}, []int{3, 4, 3}, NoStart},
		{"single station exact", []int{5}, []int{5}, 0},
		{"single station short", []int{4}, []int{5}, NoStart},
		{"first station works", []int{5, 1, 2}, []int{1, 2, 3}, 0},
		{"last station", []int{0, 0, 10}, []int{1, 1, 1}, 2},
		{"all zero", []int{0, 0, 0}, []int{0, 0, 0}, 0},
		{"empty", nil, nil, NoStart},
		{"mismatched", []int{1, 2}, []int{1}, NoStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Solve(tt.supply, tt.cost))
		})
	}
}

// bruteForce tries every start in order.
func bruteForce(supply, cost []int) int {
	for s := range supply {
		if Feasible(supply, cost, s) {
			return s
		}
	}
	return NoStart
}

func TestSolveMatchesSimulation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 2000; iter++ {
		n := 1 + r.Intn(8)
		supply := make([]int, n)
		cost := make([]int, n)
		for i := 0; i < n; i++ {
			supply[i] = r.Intn(10)
			cost[i] = r.Intn(10)
		}

		got := Solve(supply, cost)
		if got == NoStart {
			require.Equal(t, NoStart, bruteForce(supply, cost), "supply=%v cost=%v", supply, cost)
			continue
		}
		require.True(t, Feasible(supply, cost, got), "supply=%v cost=%v start=%d", supply, cost, got)
	}
}

func TestSolveShortTotalIsInfeasible(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		n := 1 + r.Intn(10)
		supply := make([]int, n)
		cost := make([]int, n)
		for i := 0; i < n; i++ {
			supply[i] = r.Intn(5)
			cost[i] = r.Intn(5) + 1
		}
		if Sum(supply) >= Sum(cost) {
			continue
		}
		r.Shuffle(n, func(i, j int) {
			supply[i], supply[j] = supply[j], supply[i]
			cost[i], cost[j] = cost[j], cost[i]
		})
		require.Equal(t, NoStart, Solve(supply, cost))
	}
}

func TestSolveDeterministic(t *testing.T) {
	supply := []int{1, 2, 3, 4, 5}
	cost := []int{3, 4, 5, 1, 2}
	first := Solve(supply, cost)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Solve(supply, cost))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, supply, "input must not be modified")
}

func TestFeasible(t *testing.T) {
	supply := []int{1, 2, 3, 4, 5}
	cost := []int{3, 4, 5, 1, 2}
	assert.True(t, Feasible(supply, cost, 3))
	assert.False(t, Feasible(supply, cost, 0))
	assert.False(t, Feasible(supply, cost, -1))
	assert.False(t, Feasible(supply, cost, 5))
	assert.False(t, Feasible(nil, nil, 0))
}

func TestParseList(t *testing.T) {
	got, err := ParseList(" 1, 2,3 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = ParseList("")
	assert.Error(t, err)

	_, err = ParseList("1,a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")

	_, err = ParseList("1,99999999999999999999999")
	assert.Error(t, err)
}

func TestCheckPair(t *testing.T) {
	assert.NoError(t, CheckPair([]int{1}, []int{2}))

	err := CheckPair([]int{1, 2, 3}, []int{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Start in #0", Label(0))
	assert.Equal(t, "Start in #3", Label(3))
	assert.Equal(t, "-1", Label(NoStart))
}

func TestCheckedSum(t *testing.T) {
	s, err := CheckedSum([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, s)

	s, err = CheckedSum([]int{math.MaxInt, 0})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, s)

	_, err = CheckedSum([]int{math.MaxInt, 1})
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = CheckedSum([]int{1, -1})
	assert.Error(t, err)
}

func TestSolveStartStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 1000; iter++ {
		n := 1 + r.Intn(6)
		supply := make([]int, n)
		cost := make([]int, n)
		for i := 0; i < n; i++ {
			supply[i] = r.Intn(4)
			cost[i] = r.Intn(4)
		}
		got := Solve(supply, cost)
		require.True(t, got == NoStart || (got >= 0 && got < n), "supply=%v cost=%v got=%d", supply, cost, got)
	}
}
