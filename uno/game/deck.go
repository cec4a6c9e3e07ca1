package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Deck is a stack of cards. Draws take from the end.
type Deck struct {
	cards []card.Card
	intn  func(int) int
}

// NewDeck returns the standard 108 cards shuffled with intn.
func NewDeck(intn func(int) int) *Deck {
	deck := &Deck{cards: card.Standard(), intn: intn}
	deck.Shuffle()
	return deck
}

// NewDeckFrom keeps the given order; the last card is drawn first.
func NewDeckFrom(cards []card.Card, intn func(int) int) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards)), intn: intn}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Pop() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

func (d *Deck) Push(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Shuffle() {
	Shuffle(d.cards, d.intn)
}

// Shuffle is a Fisher-Yates shuffle; intn(n) must return a value in [0, n).
func Shuffle(cards []card.Card, intn func(int) int) {
	for i := len(cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
