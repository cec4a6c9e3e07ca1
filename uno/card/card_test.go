package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    card.Card
	}{
		{description: "number_card", input: "red-7", expected: card.NewNumberCard(color.Red, 7)},
		{description: "color_initial", input: "b-0", expected: card.NewNumberCard(color.Blue, 0)},
		{description: "ignores_case_and_spaces", input: " Green-Skip ", expected: card.NewSkipCard(color.Green)},
		{description: "reverse", input: "yellow-reverse", expected: card.NewReverseCard(color.Yellow)},
		{description: "draw_two", input: "blue-draw-two", expected: card.NewDrawTwoCard(color.Blue)},
		{description: "wild", input: "wild", expected: card.NewWildCard()},
		{description: "wild_draw_four", input: "wild-draw-four", expected: card.NewWildDrawFourCard()},
		{description: "draw_four_shorthand", input: "+4", expected: card.NewWildDrawFourCard()},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			parsed, err := card.Parse(scenario.input)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, parsed)
		})
	}
}

func TestParseRejectsUnknownCards(t *testing.T) {
	for _, input := range []string{"", "a", "purple-3", "red-10", "red-draw-four", "none-5", "wild-7"} {
		_, err := card.Parse(input)
		assert.Error(t, err, input)
	}
}

func TestNameRoundTrips(t *testing.T) {
	for _, c := range card.Standard() {
		parsed, err := card.Parse(c.Name())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}

func TestStandard(t *testing.T) {
	cards := card.Standard()
	require.Len(t, cards, card.StandardDeckSize)

	counts := map[card.Card]int{}
	for _, c := range cards {
		require.True(t, c.Valid(), c.Name())
		counts[c]++
	}
	for _, c := range color.All {
		require.Equal(t, 1, counts[card.NewNumberCard(c, 0)])
		for n := 1; n <= 9; n++ {
			require.Equal(t, 2, counts[card.NewNumberCard(c, n)])
		}
		require.Equal(t, 2, counts[card.NewSkipCard(c)])
		require.Equal(t, 2, counts[card.NewReverseCard(c)])
		require.Equal(t, 2, counts[card.NewDrawTwoCard(c)])
	}
	require.Equal(t, 4, counts[card.NewWildCard()])
	require.Equal(t, 4, counts[card.NewWildDrawFourCard()])
}

func TestActions(t *testing.T) {
	require.Empty(t, card.NewNumberCard(color.Red, 3).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Equal(t,
		[]action.Action{action.NewSkipTurnAction(), action.NewDrawCardsAction(2)},
		card.NewDrawTwoCard(color.Red).Actions(),
	)
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	require.Equal(t,
		[]action.Action{action.NewPickColorAction(), action.NewSkipTurnAction(), action.NewDrawCardsAction(4)},
		card.NewWildDrawFourCard().Actions(),
	)
}

func TestWildCardsHaveNoColor(t *testing.T) {
	require.True(t, card.NewWildCard().IsWild())
	require.Equal(t, color.None, card.NewWildDrawFourCard().Color)
	require.False(t, card.NewDrawTwoCard(color.Green).IsWild())
}
