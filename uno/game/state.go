package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Status int

const (
	Created Status = iota
	Running
	Won
	Aborted
)

var statusNames = map[Status]string{
	Created: "created",
	Running: "running",
	Won:     "won",
	Aborted: "no-contest",
}

func (s Status) String() string {
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pending is the input the current player owes before play can go on.
type Pending int

const (
	PendingNone Pending = iota
	PendingColor
	PendingTarget
)

var pendingNames = map[Pending]string{
	PendingNone:   "none",
	PendingColor:  "color",
	PendingTarget: "target",
}

func (p Pending) String() string {
	return pendingNames[p]
}

func (p Pending) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// PublicState is what every player may see. It never holds hand contents.
type PublicState struct {
	MatchID     string         `json:"matchId"`
	Status      Status         `json:"status"`
	TopCard     card.Card      `json:"topCard"`
	TopColor    color.Color    `json:"topColor"`
	TopValue    card.Value     `json:"topValue"`
	Current     string         `json:"current"`
	Direction   int            `json:"direction"`
	Players     []string       `json:"players"`
	HandCounts  map[string]int `json:"handCounts"`
	DeckSize    int            `json:"deckSize"`
	DiscardSize int            `json:"discardSize"`
	Pending     Pending        `json:"pending"`
	PendingDraw int            `json:"pendingDraw,omitempty"`
	Winner      string         `json:"winner,omitempty"`
}

func (s PublicState) String() string {
	var lines []string
	top := s.TopCard.String()
	if s.TopCard.IsWild() && s.TopColor.Valid() {
		top = fmt.Sprintf("%s (%s)", top, s.TopColor)
	}
	lines = append(lines, fmt.Sprintf("Last played card: %s", top))

	var playerStatuses []string
	for _, playerID := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerID, s.HandCounts[playerID])
		if playerID == s.Current {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	arrow := "->"
	if s.Direction == CounterClockwise {
		arrow = "<-"
	}
	lines = append(lines, fmt.Sprintf("Turn order %s %s", arrow, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d, discard pile: %d", s.DeckSize, s.DiscardSize))
	return strings.Join(lines, "\n")
}

// PlayerView is PublicState plus one player's private hand.
type PlayerView struct {
	PublicState
	PlayerID string      `json:"playerId"`
	Hand     []card.Card `json:"hand"`
	Playable []card.Card `json:"playable"`
	HasDrawn bool        `json:"hasDrawn"`
}

func (v PlayerView) String() string {
	return fmt.Sprintf("%s\nYour hand: %s", v.PublicState, v.Hand)
}
