package game_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C", "D"})
	assert.Equal(t, "D", cycler.Current())
	cycler.Next()
	assert.Equal(t, "A", cycler.Current())
	cycler.Next()
	assert.Equal(t, "B", cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, "A", cycler.Current())
	cycler.Next()
	assert.Equal(t, "D", cycler.Current())
	cycler.Next()
	assert.Equal(t, "C", cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, "D", cycler.Current())
	cycler.Next()
	assert.Equal(t, "A", cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C", "D"})

	var results []string
	cycler.ForEach(func(element string) {
		results = append(results, fmt.Sprintf("called for %s", element))
	})

	require.Equal(t, []string{
		"called for A",
		"called for B",
		"called for C",
		"called for D",
	}, results)
}

func TestNext(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C", "D"})
	assert.Equal(t, "A", cycler.Next())
	assert.Equal(t, "B", cycler.Next())
	assert.Equal(t, "C", cycler.Next())
	assert.Equal(t, "D", cycler.Next())
	assert.Equal(t, "A", cycler.Next())
}

func TestReverse(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C", "D"})
	assert.Equal(t, "A", cycler.Next())
	assert.Equal(t, "B", cycler.Next())
	cycler.Reverse()
	assert.Equal(t, "A", cycler.Next())
	assert.Equal(t, "D", cycler.Next())
	assert.Equal(t, "C", cycler.Next())
	cycler.Reverse()
	assert.Equal(t, "D", cycler.Next())
	assert.Equal(t, "A", cycler.Next())
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C", "D"})
	cycler.Next()
	assert.Equal(t, "B", cycler.Peek(1))
	assert.Equal(t, "C", cycler.Peek(2))
	assert.Equal(t, "A", cycler.Current())
	cycler.Reverse()
	assert.Equal(t, "D", cycler.Peek(1))
	assert.Equal(t, "C", cycler.Peek(2))
	assert.Equal(t, "A", cycler.Current())
}

func TestAdvance(t *testing.T) {
	scenarios := []struct {
		description string
		reversed    bool
		seats       int
		expected    string
	}{
		{description: "one_seat_clockwise", seats: 1, expected: "B"},
		{description: "two_seats_clockwise", seats: 2, expected: "C"},
		{description: "wraps_clockwise", seats: 5, expected: "B"},
		{description: "one_seat_counter_clockwise", reversed: true, seats: 1, expected: "D"},
		{description: "two_seats_counter_clockwise", reversed: true, seats: 2, expected: "C"},
		{description: "wraps_counter_clockwise", reversed: true, seats: 6, expected: "C"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			cycler := game.NewCycler([]string{"A", "B", "C", "D"})
			cycler.Next()
			if scenario.reversed {
				cycler.Reverse()
				assert.Equal(t, game.CounterClockwise, cycler.Direction())
			}
			assert.Equal(t, scenario.expected, cycler.Advance(scenario.seats))
			assert.Equal(t, scenario.expected, cycler.Current())
		})
	}
}

func TestReverseKeepsSeats(t *testing.T) {
	cycler := game.NewCycler([]string{"A", "B", "C"})
	cycler.Reverse()
	cycler.Reverse()
	cycler.Reverse()
	require.Equal(t, []string{"A", "B", "C"}, cycler.Elements())
	require.Equal(t, game.CounterClockwise, cycler.Direction())
	require.True(t, cycler.Contains("B"))
	require.False(t, cycler.Contains("E"))
}
