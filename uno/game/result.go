package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Kind tags what a caller has to do after an engine operation.
type Kind int

const (
	Continue Kind = iota
	AwaitingColorChoice
	AwaitingDrawTarget
	RoundRestart
	PlayerWon
	NoContest
)

var kindNames = map[Kind]string{
	Continue:            "continue",
	AwaitingColorChoice: "awaiting-color-choice",
	AwaitingDrawTarget:  "awaiting-draw-target",
	RoundRestart:        "round-restart",
	PlayerWon:           "player-won",
	NoContest:           "no-contest",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Terminal reports whether no further move is possible.
func (k Kind) Terminal() bool {
	return k == PlayerWon || k == NoContest
}

// MoveResult describes the outcome of PlayCard, Pass, ChooseColor and
// SelectDrawTarget.
type MoveResult struct {
	Kind     Kind        `json:"kind"`
	PlayerID string      `json:"playerId"`
	Card     card.Card   `json:"card"`
	Color    color.Color `json:"color"`
	// Next is the player expected to act now. While awaiting a color or a
	// draw target it is still the player who played.
	Next    string `json:"next"`
	Winner  string `json:"winner,omitempty"`
	Skipped string `json:"skipped,omitempty"`
	// Victim drew Penalty cards because of the played card.
	Victim      string `json:"victim,omitempty"`
	Penalty     int    `json:"penalty,omitempty"`
	PendingDraw int    `json:"pendingDraw,omitempty"`
	Reshuffled  bool   `json:"reshuffled"`
}

type DrawResult struct {
	MoveResult
	Drawn card.Card `json:"drawn"`
	// Playable means the drawn card may be played right away; the turn stays
	// with the drawer until they play it or pass.
	Playable bool `json:"playable"`
}

type BeginState struct {
	PublicState
	Kind    Kind      `json:"kind"`
	Opening card.Card `json:"opening"`
}
