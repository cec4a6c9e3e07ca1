package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, card.StandardDeckSize)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeUnder removes and returns every card below the top one.
func (p *Pile) TakeUnder() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return under
}
