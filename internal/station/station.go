// Package station finds the gas station from which a circular trip can be
// completed.
package station

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoStart is returned by Solve when no station allows completing the circuit.
const NoStart = -1

// ErrLengthMismatch reports supply and cost lists of different lengths.
var ErrLengthMismatch = errors.New("both entries must contain the same amount of numbers")

// ErrOverflow reports a list whose total does not fit in an int.
var ErrOverflow = errors.New("total too large")

// Solve returns the zero-based index of the station to start from, or NoStart.
//
// supply[i] is the fuel available at station i and cost[i] the fuel needed to
// reach station i+1 (wrapping around). Whenever the tank goes negative at i,
// no station between the last reset and i can be a start, so the scan moves
// the candidate to i+1. If the total balance is non-negative the last
// candidate is the answer.
func Solve(supply, cost []int) int {
	if len(supply) == 0 || len(supply) != len(cost) {
		return NoStart
	}

	start, tank, total := 0, 0, 0
	for i := range supply {
		diff := supply[i] - cost[i]
		tank += diff
		total += diff

		if tank < 0 {
			start = i + 1
			tank = 0
		}
	}

	if total < 0 || start >= len(supply) {
		return NoStart
	}
	return start
}

// Feasible simulates the trip starting at start and reports whether the tank
// stays non-negative for the whole circuit.
func Feasible(supply, cost []int, start int) bool {
	n := len(supply)
	if n == 0 || n != len(cost) || start < 0 || start >= n {
		return false
	}
	tank := 0
	for k := 0; k < n; k++ {
		i := (start + k) % n
		tank += supply[i] - cost[i]
		if tank < 0 {
			return false
		}
	}
	return true
}

// CheckPair returns ErrLengthMismatch unless both lists have the same length.
func CheckPair(supply, cost []int) error {
	if len(supply) != len(cost) {
		return fmt.Errorf("%w (got %d and %d)", ErrLengthMismatch, len(supply), len(cost))
	}
	return nil
}

// ParseList converts "1, 2,3" into []int{1, 2, 3}.
func ParseList(raw string) ([]int, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return nil, errors.New("empty list")
	}
	parts := strings.Split(t, ",")
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i+1, strings.TrimSpace(p), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Sum adds up a list.
func Sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

// CheckedSum adds up a list of non-negative values, failing with ErrOverflow
// instead of wrapping. Once both lists pass, every running balance in Solve
// stays within int range.
func CheckedSum(xs []int) (int, error) {
	s := 0
	for i, x := range xs {
		if x < 0 {
			return 0, fmt.Errorf("item %d: negative value %d", i+1, x)
		}
		if x > math.MaxInt-s {
			return 0, fmt.Errorf("item %d: %w", i+1, ErrOverflow)
		}
		s += x
	}
	return s, nil
}

// Label is the text shown for a Solve result.
func Label(result int) string {
	if result < 0 {
		return strconv.Itoa(result)
	}
	return fmt.Sprintf("Start in #%d", result)
}
