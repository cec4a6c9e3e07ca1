package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		topColor       color.Color
		topValue       card.Value
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: false,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.NewReverseCard(color.Red),
			topColor:       color.Blue,
			topValue:       card.Reverse,
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.NewSkipCard(color.Red),
			topColor:       color.Blue,
			topValue:       card.Skip,
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.NewDrawTwoCard(color.Red),
			topColor:       color.Blue,
			topValue:       card.DrawTwo,
			expectedResult: true,
		},
		{
			description:    "action_cards_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue),
			topColor:       color.Blue,
			topValue:       card.DrawTwo,
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			topColor:       color.Blue,
			topValue:       card.DrawTwo,
			expectedResult: false,
		},
		{
			description:    "number_card_then_action_card_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			topColor:       color.Blue,
			topValue:       7,
			expectedResult: false,
		},
		{
			description:    "action_card_then_number_card_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			topColor:       color.Blue,
			topValue:       card.Reverse,
			expectedResult: true,
		},
		{
			description:    "colored_wild_card_then_card_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			topColor:       color.Blue,
			topValue:       card.ChangeColor,
			expectedResult: true,
		},
		{
			description:    "colored_wild_card_then_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			topColor:       color.Blue,
			topValue:       card.ChangeColor,
			expectedResult: false,
		},
		{
			description:    "colored_wild_draw_four_then_action_card_with_different_color",
			candidateCard:  card.NewDrawTwoCard(color.Red),
			topColor:       color.Green,
			topValue:       card.DrawFour,
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.topColor, scenario.topValue)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestRulesOverFullDeck(t *testing.T) {
	values := []card.Value{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, card.Skip, card.Reverse, card.DrawTwo, card.DrawFour, card.ChangeColor}
	for _, candidate := range card.Standard() {
		for _, topColor := range color.All {
			for _, topValue := range values {
				expected := candidate.IsWild() || candidate.Color == topColor || candidate.Value == topValue
				require.Equal(t, expected, game.Playable(candidate, topColor, topValue),
					"%s on %s %s", candidate.Name(), topColor.Name(), topValue)
				if !candidate.IsWild() && candidate.Color != topColor && candidate.Value.IsNumber() != topValue.IsNumber() {
					require.False(t, game.Playable(candidate, topColor, topValue))
				}
			}
		}
	}
}
