package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

type autoPlayer struct {
	basicPlayer
}

// NewAutoPlayer moves for a person whose turn timed out: it draws, plays
// the drawn card when allowed and otherwise passes.
func NewAutoPlayer(name string) Strategy {
	return autoPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p autoPlayer) Play(playableCards []card.Card, view game.PlayerView) (card.Card, bool) {
	if !view.HasDrawn {
		return card.Card{}, false
	}
	return playableCards[0], true
}
