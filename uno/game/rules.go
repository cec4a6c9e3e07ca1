package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may go on a pile whose required
// color and value are topColor and topValue.
func Playable(candidateCard card.Card, topColor color.Color, topValue card.Value) bool {
	if candidateCard.IsWild() {
		return true
	}
	if candidateCard.Color == topColor {
		return true
	}
	return candidateCard.Value == topValue
}

// Rules are the optional variants a match can be created with.
type Rules struct {
	// ChooseDrawTarget lets whoever plays a draw card pick who draws.
	ChooseDrawTarget bool `json:"chooseDrawTarget"`
	// TwoPlayerReverseSkips makes a reverse act as a skip in two player
	// matches, so the same player moves again.
	TwoPlayerReverseSkips bool `json:"twoPlayerReverseSkips"`
}

type Option func(*Game)

func WithRules(rules Rules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// WithRandom replaces the random source used for every shuffle.
func WithRandom(intn func(int) int) Option {
	return func(g *Game) {
		g.intn = intn
	}
}

// WithDeck starts the match from cards in the given order instead of a
// shuffled standard deck. The last card is drawn first.
func WithDeck(cards []card.Card) Option {
	return func(g *Game) {
		g.preset = make([]card.Card, len(cards))
		copy(g.preset, cards)
	}
}

func WithListener(listener interface{}) Option {
	return func(g *Game) {
		g.events.AddListener(listener)
	}
}
