package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) Strategy {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) PickColor(view game.PlayerView) color.Color {
	return color.All[rand.Intn(len(color.All))]
}

func (p naivePlayer) Play(playableCards []card.Card, view game.PlayerView) (card.Card, bool) {
	return playableCards[0], true
}
