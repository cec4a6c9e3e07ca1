package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Strategy decides for a seat that is not driven by a person: a bot, or a
// player whose turn timed out.
type Strategy interface {
	Name() string
	PickColor(view game.PlayerView) color.Color
	// Play picks one of playableCards, or reports false to draw instead.
	Play(playableCards []card.Card, view game.PlayerView) (card.Card, bool)
	PickTarget(view game.PlayerView) string
}

type MoveKind int

const (
	PlayMove MoveKind = iota
	DrawMove
	PassMove
	ColorMove
	TargetMove
)

type Move struct {
	Kind   MoveKind
	Card   card.Card
	Color  color.Color
	Target string
}

// Mover is the part of a match a Move is applied to.
type Mover interface {
	PlayCard(playerID string, c card.Card) (game.MoveResult, error)
	DrawCard(playerID string) (game.DrawResult, error)
	Pass(playerID string) (game.MoveResult, error)
	ChooseColor(playerID string, c color.Color) (game.MoveResult, error)
	SelectDrawTarget(playerID, targetID string) (game.MoveResult, error)
}

// Decide returns the next move of the player owning view.
func Decide(s Strategy, view game.PlayerView) Move {
	switch view.Pending {
	case game.PendingColor:
		return Move{Kind: ColorMove, Color: s.PickColor(view)}
	case game.PendingTarget:
		return Move{Kind: TargetMove, Target: s.PickTarget(view)}
	}
	if len(view.Playable) > 0 {
		if c, ok := s.Play(view.Playable, view); ok {
			return Move{Kind: PlayMove, Card: c}
		}
	}
	if view.HasDrawn {
		return Move{Kind: PassMove}
	}
	return Move{Kind: DrawMove}
}

func (m Move) Apply(g Mover, playerID string) (game.MoveResult, error) {
	switch m.Kind {
	case PlayMove:
		return g.PlayCard(playerID, m.Card)
	case PassMove:
		return g.Pass(playerID)
	case ColorMove:
		return g.ChooseColor(playerID, m.Color)
	case TargetMove:
		return g.SelectDrawTarget(playerID, m.Target)
	}
	result, err := g.DrawCard(playerID)
	return result.MoveResult, err
}
