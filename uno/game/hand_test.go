package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards(
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	)
	require.ElementsMatch(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards(
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	)
	require.False(t, hand.Empty())
}

func TestPlayableCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards(
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	)
	playableCards := hand.PlayableCards(color.Blue, 7)
	require.ElementsMatch(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewDrawTwoCard(color.Blue),
	}, playableCards)
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_an_existing_card", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards(
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		)

		require.True(t, hand.RemoveCard(card.NewReverseCard(color.Yellow)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("does_nothing_if_card_is_not_in_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards(
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		)
		require.False(t, hand.RemoveCard(card.NewDrawTwoCard(color.Red)))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("removes_a_single_copy", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards(
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
		)
		hand.RemoveCard(card.NewNumberCard(color.Red, 6))
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 6),
		}, hand.Cards())
	})
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards(
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	)
	require.Equal(t, 3, hand.Size())
}

func TestContains(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards(card.NewWildDrawFourCard(), card.NewSkipCard(color.Green))
	require.True(t, hand.Contains(card.NewSkipCard(color.Green)))
	require.False(t, hand.Contains(card.NewSkipCard(color.Red)))
	require.False(t, hand.Contains(card.NewWildCard()))
}
