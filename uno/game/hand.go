package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched card.Card) bool {
	for _, c := range h.cards {
		if c == searched {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(topColor color.Color, topValue card.Value) []card.Card {
	playableCards := make([]card.Card, 0)
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, topColor, topValue) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes one copy of card and reports whether it was held.
func (h *Hand) RemoveCard(card card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand == card {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
