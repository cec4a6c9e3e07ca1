package card

import "github.com/ratel-online/uno/uno/card/color"

const StandardDeckSize = 108

// Standard returns the 108 cards of a standard deck in a fixed order.
func Standard() []Card {
	cards := make([]Card, 0, StandardDeckSize)
	for _, c := range color.All {
		cards = append(cards, createColorCards(c)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []Card {
	zeroCard := NewNumberCard(cardColor, 0)
	skipCard := NewSkipCard(cardColor)
	reverseCard := NewReverseCard(cardColor)
	drawTwoCard := NewDrawTwoCard(cardColor)

	cards := []Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []Card {
	wildCard := NewWildCard()
	wildDrawFourCard := NewWildDrawFourCard()

	return []Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
