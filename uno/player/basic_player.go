package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) PickColor(view game.PlayerView) color.Color {
	return mostFrequentColor(view)
}

// PickTarget aims at the opponent holding the fewest cards.
func (p basicPlayer) PickTarget(view game.PlayerView) string {
	target := ""
	for _, id := range view.Players {
		if id == view.PlayerID {
			continue
		}
		if target == "" || view.HandCounts[id] < view.HandCounts[target] {
			target = id
		}
	}
	return target
}

func mostFrequentColor(view game.PlayerView) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range view.Hand {
		if c.IsWild() {
			for _, available := range color.All {
				colorCounts[available]++
			}
		} else {
			colorCounts[c.Color]++
		}
	}

	mostFrequent := color.Blue
	mostFrequentAmount := 0
	for _, available := range color.All {
		if colorCounts[available] > mostFrequentAmount {
			mostFrequentAmount = colorCounts[available]
			mostFrequent = available
		}
	}
	return mostFrequent
}
