package game

import (
	"strconv"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

type Uno struct{}

func (g *Uno) Next(p *database.Player) (consts.StateID, error) {
	room := database.GetRoom(p.RoomID)
	if room == nil {
		return 0, p.WriteError(consts.ErrorsExist)
	}
	ug := room.UnoGame
	if ug == nil {
		return consts.StateWaiting, nil
	}
	seat := p.SeatID()
	states, ok := ug.States[seat]
	if !ok {
		return consts.StateWaiting, nil
	}
	if view, err := ug.Game.PlayerView(seat); err == nil {
		_ = p.WriteString(msg.Message.Welcome() + msg.Message.HumanPlayerHand(view.Hand))
	}
	for {
		state, ok := <-states
		if !ok {
			return 0, consts.ErrorsChanClosed
		}
		switch state {
		case database.UnoStatePlay:
			err := handlePlay(p, ug, seat)
			if err != nil {
				log.Error(err)
				return 0, err
			}
		case database.UnoStateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

func (g *Uno) Exit(p *database.Player) consts.StateID {
	if room := database.GetRoom(p.RoomID); room != nil {
		database.LeaveRoom(room.ID, p.ID)
		database.Broadcast(room.ID, p.Name+" left the match, the server plays the rest of it.\n")
	}
	return consts.StateHome
}

// handlePlay runs one turn of p. A timeout plays the rest of the turn
// automatically; leaving hands the seat to the server for good.
func handlePlay(p *database.Player, ug *database.UnoGame, seat string) error {
	if ug.Game.Current() != seat {
		return nil
	}
	defer ug.Dispatch()
	for {
		view, err := ug.Game.PlayerView(seat)
		if err != nil || view.Status != game.Running || view.Current != seat {
			return nil
		}
		labels, options := database.Labels(view.Playable)
		_ = p.WriteString(prompt(ug, view, labels))
		input, err := p.AskForString(config.Get().PlayTimeout)
		if err == consts.ErrorsTimeout {
			_ = p.WriteString("Timeout! The server plays for you.\n")
			if err = ug.AutoPlay(seat); err != nil {
				_ = p.WriteError(err)
			}
			continue
		}
		if err != nil {
			ug.Leave(seat)
			return err
		}
		move, ok, err := ParseMove(input, view, ug.Others(seat), ug.Name, options)
		if err != nil {
			_ = p.WriteError(err)
			continue
		}
		if !ok {
			database.BroadcastChat(p, p.Name+" say: "+strings.TrimSpace(input)+"\n")
			continue
		}
		if _, err = move.Apply(ug.Game, seat); err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				return nil
			}
			_ = p.WriteError(err)
		}
	}
}

func prompt(ug *database.UnoGame, view game.PlayerView, labels []string) string {
	view.PublicState = named(ug, view.PublicState)
	lines := []string{"", view.String()}
	switch view.Pending {
	case game.PendingColor:
		lines = append(lines, msg.Message.PickColor())
	case game.PendingTarget:
		others := ug.Others(view.PlayerID)
		names := make([]string, 0, len(others))
		for _, seat := range others {
			names = append(names, ug.Name(seat))
		}
		lines = append(lines, msg.Message.PickTarget(view.PendingDraw, names))
	default:
		lines = append(lines, msg.Message.HumanPlayerTurnStarted(ug.Name(view.PlayerID)))
		lines = append(lines, msg.Message.CardSelection(labels, view.Playable, view.HasDrawn))
	}
	return strings.Join(lines, "\n")
}

// named replaces seat ids with display names.
func named(ug *database.UnoGame, state game.PublicState) game.PublicState {
	counts := make(map[string]int, len(state.HandCounts))
	players := make([]string, 0, len(state.Players))
	for _, seat := range state.Players {
		name := ug.Name(seat)
		players = append(players, name)
		counts[name] = state.HandCounts[seat]
	}
	state.Current = ug.Name(state.Current)
	state.Players = players
	state.HandCounts = counts
	return state
}

// ParseMove reads a command typed during a turn. A false result without an
// error means input is chat. others lists the seats a draw penalty may go
// to, numbered from 1 in prompts; options maps card labels to cards.
func ParseMove(input string, view game.PlayerView, others []string, name func(string) string, options map[string]card.Card) (player.Move, bool, error) {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)
	if lower == "" {
		return player.Move{}, false, nil
	}
	switch view.Pending {
	case game.PendingColor:
		c, err := color.ByName(lower)
		if err != nil {
			return player.Move{}, false, consts.ErrorsInvalidColor
		}
		return player.Move{Kind: player.ColorMove, Color: c}, true, nil
	case game.PendingTarget:
		if n, err := strconv.Atoi(lower); err == nil {
			if n < 1 || n > len(others) {
				return player.Move{}, false, consts.ErrorsInvalidTarget
			}
			return player.Move{Kind: player.TargetMove, Target: others[n-1]}, true, nil
		}
		for _, seat := range others {
			if strings.EqualFold(name(seat), input) {
				return player.Move{Kind: player.TargetMove, Target: seat}, true, nil
			}
		}
		return player.Move{}, false, consts.ErrorsInvalidTarget
	}
	switch lower {
	case "draw":
		return player.Move{Kind: player.DrawMove}, true, nil
	case "pass":
		return player.Move{Kind: player.PassMove}, true, nil
	}
	if c, ok := options[strings.ToUpper(input)]; ok {
		return player.Move{Kind: player.PlayMove, Card: c}, true, nil
	}
	if c, err := card.Parse(lower); err == nil {
		return player.Move{Kind: player.PlayMove, Card: c}, true, nil
	}
	return player.Move{}, false, nil
}
