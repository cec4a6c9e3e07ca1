package game

import "github.com/ratel-online/uno/uno/card"

// Arrange replaces the cards of a running match so tests can build exact
// situations. The last pile card becomes the top card and the turn goes
// back to a clean state for the current player.
func (g *Game) Arrange(pile []card.Card, deck []card.Card, hands map[string][]card.Card) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pile = NewPile()
	for _, c := range pile {
		g.pile.Add(c)
	}
	if top, ok := g.pile.Top(); ok {
		g.topColor = top.Color
		g.topValue = top.Value
	}
	g.deck = NewDeckFrom(deck, g.intn)
	for id, cards := range hands {
		hand := NewHand()
		hand.AddCards(cards...)
		g.hands[id] = hand
	}
	g.pending = PendingNone
	g.pendingDraw = 0
	g.deferred = nil
	g.opening = false
	g.hasDrawn = false
	g.skipNext = false
}
