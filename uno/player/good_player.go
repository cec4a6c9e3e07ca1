package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) Strategy {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

// Play prefers the card after which most of the hand stays playable.
func (p goodPlayer) Play(playableCards []card.Card, view game.PlayerView) (card.Card, bool) {
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, playableCard := range playableCards {
		nextColor := playableCard.Color
		if playableCard.IsWild() {
			nextColor = mostFrequentColor(view)
		}
		spareCards := 0
		for _, handCard := range view.Hand {
			if game.Playable(handCard, nextColor, playableCard.Value) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex], true
}
