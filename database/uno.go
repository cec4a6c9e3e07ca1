package database

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	unoplayer "github.com/ratel-online/uno/uno/player"
	"github.com/sasha-s/go-deadlock"
)

// Signals sent over UnoGame.States to a seat's goroutine.
const (
	UnoStatePlay    = 1
	UnoStateWaiting = 2
)

const botPrefix = "bot:"

// UnoGame binds a match to its room. Every connected person owns a state
// channel; robots and people who left are moved by a Strategy instead.
type UnoGame struct {
	Room    *Room               `json:"-"`
	Game    *game.Game          `json:"-"`
	Players []string            `json:"players"`
	States  map[string]chan int `json:"-"`
	names   map[string]string
	humans  map[string]int64
	bots    map[string]unoplayer.Strategy
	left    map[string]bool
	mu      deadlock.Mutex
	over    bool
}

// NewUnoGame seats the room's people in join order followed by its robots
// and starts the match. The caller holds the room lock.
func NewUnoGame(room *Room) (*UnoGame, game.BeginState, error) {
	ug := &UnoGame{
		Room:   room,
		States: map[string]chan int{},
		names:  map[string]string{},
		humans: map[string]int64{},
		bots:   map[string]unoplayer.Strategy{},
		left:   map[string]bool{},
	}
	for _, id := range room.playerIDs() {
		player := getPlayer(id)
		if player == nil {
			continue
		}
		seat := player.SeatID()
		ug.Players = append(ug.Players, seat)
		ug.States[seat] = make(chan int, 1)
		ug.names[seat] = player.Name
		ug.humans[seat] = player.ID
	}
	for _, name := range room.Robots {
		seat := botPrefix + name
		ug.Players = append(ug.Players, seat)
		ug.names[seat] = name + "(bot)"
		ug.bots[seat] = unoplayer.NewBot(name)
	}
	g, err := game.New("", ug.Players, game.WithRules(room.Rules), game.WithListener(ug))
	if err != nil {
		return nil, game.BeginState{}, err
	}
	ug.Game = g
	begin, err := g.Begin()
	if err != nil {
		return nil, game.BeginState{}, err
	}
	log.Infof("room %d started match %s with %s\n", room.ID, g.MatchID(), strings.Join(ug.Players, ","))
	return ug, begin, nil
}

func (ug *UnoGame) Name(seat string) string {
	if name, ok := ug.names[seat]; ok {
		return name
	}
	return seat
}

// Others lists every seat but seat, in seat order.
func (ug *UnoGame) Others(seat string) []string {
	others := make([]string, 0, len(ug.Players)-1)
	for _, id := range ug.Players {
		if id != seat {
			others = append(others, id)
		}
	}
	return others
}

// Leave hands seat over to the server for the rest of the match.
func (ug *UnoGame) Leave(seat string) {
	ug.mu.Lock()
	defer ug.mu.Unlock()
	ug.left[seat] = true
}

func (ug *UnoGame) strategy(seat string) unoplayer.Strategy {
	if bot, ok := ug.bots[seat]; ok {
		return bot
	}
	ug.mu.Lock()
	left := ug.left[seat]
	ug.mu.Unlock()
	player := getPlayer(ug.humans[seat])
	if left || player == nil || !player.online {
		return unoplayer.NewAutoPlayer(ug.Name(seat))
	}
	return nil
}

// Dispatch moves every seat nobody answers for until a person has to act,
// then signals that person. A finished match resets the room.
func (ug *UnoGame) Dispatch() {
	for {
		state := ug.Game.PublicState()
		if state.Status != game.Running {
			ug.finish()
			return
		}
		strategy := ug.strategy(state.Current)
		if strategy == nil {
			ug.signal(state.Current, UnoStatePlay)
			return
		}
		view, err := ug.Game.PlayerView(state.Current)
		if err != nil {
			log.Error(err)
			return
		}
		if _, err = unoplayer.Decide(strategy, view).Apply(ug.Game, state.Current); err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				continue
			}
			log.Errorf("room %d seat %s: %v\n", ug.Room.ID, state.Current, err)
			return
		}
	}
}

// AutoPlay finishes the turn of seat the way the server plays for people
// who left. It returns once the turn moved on or the match ended.
func (ug *UnoGame) AutoPlay(seat string) error {
	strategy := unoplayer.NewAutoPlayer(ug.Name(seat))
	for {
		view, err := ug.Game.PlayerView(seat)
		if err != nil {
			return err
		}
		if view.Status != game.Running || view.Current != seat {
			return nil
		}
		if _, err = unoplayer.Decide(strategy, view).Apply(ug.Game, seat); err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				return nil
			}
			return err
		}
	}
}

func (ug *UnoGame) finish() {
	ug.mu.Lock()
	if ug.over {
		ug.mu.Unlock()
		return
	}
	ug.over = true
	ug.mu.Unlock()

	room := ug.Room
	room.Lock()
	if room.UnoGame == ug {
		room.UnoGame = nil
		room.State = consts.RoomStateWaiting
	}
	for _, id := range ug.humans {
		if getPlayer(id) == nil {
			room.removePlayer(&Player{ID: id, RoomID: room.ID})
		}
	}
	room.Unlock()
	log.Infof("room %d match %s finished as %s\n", room.ID, ug.Game.MatchID(), ug.Game.Status())
	for _, state := range ug.States {
		select {
		case state <- UnoStateWaiting:
		default:
		}
	}
}

// signal hands the turn to seat's goroutine unless the match was torn down.
func (ug *UnoGame) signal(seat string, state int) {
	ug.mu.Lock()
	defer ug.mu.Unlock()
	if ug.over {
		return
	}
	select {
	case ug.States[seat] <- state:
	default:
	}
}

func (ug *UnoGame) delete() {
	if ug != nil {
		ug.mu.Lock()
		defer ug.mu.Unlock()
		if ug.over {
			return
		}
		ug.over = true
		for _, state := range ug.States {
			close(state)
		}
	}
}

func (ug *UnoGame) broadcast(message string, exclude ...string) {
	excluded := make([]int64, 0, len(exclude))
	for _, seat := range exclude {
		if id, ok := ug.humans[seat]; ok {
			excluded = append(excluded, id)
		}
	}
	ug.Room.broadcast(message, excluded...)
}

func (ug *UnoGame) tell(seat string, message string) {
	if id, ok := ug.humans[seat]; ok {
		if player := getPlayer(id); player != nil && player.online {
			_ = player.WriteString(message)
		}
	}
}

func (ug *UnoGame) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	ug.broadcast(msg.Message.FirstCardPlayed(payload.Card))
}

func (ug *UnoGame) OnCardPlayed(payload event.CardPlayedPayload) {
	ug.broadcast(msg.Message.PlayerPlayedCard(ug.Name(payload.PlayerID), payload.Card))
}

func (ug *UnoGame) OnColorPicked(payload event.ColorPickedPayload) {
	ug.broadcast(msg.Message.PlayerPickedColor(ug.Name(payload.PlayerID), payload.Color))
}

func (ug *UnoGame) OnPlayerPassed(payload event.PlayerPassedPayload) {
	ug.broadcast(msg.Message.PlayerPassed(ug.Name(payload.PlayerID)))
}

// OnCardsDrawn shows the cards to the drawer and only their count to the
// rest of the room.
func (ug *UnoGame) OnCardsDrawn(payload event.CardsDrawnPayload) {
	ug.broadcast(msg.Message.PlayerDrewCards(ug.Name(payload.PlayerID), len(payload.Cards)), payload.PlayerID)
	ug.tell(payload.PlayerID, msg.Message.HumanPlayerDrewCards(payload.Cards))
}

func (ug *UnoGame) OnTurnSkipped(payload event.TurnSkippedPayload) {
	ug.broadcast(msg.Message.PlayerTurnSkipped(ug.Name(payload.PlayerID)))
}

func (ug *UnoGame) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	ug.broadcast(msg.Message.TurnOrderReversed())
}

func (ug *UnoGame) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	ug.broadcast(msg.Message.DeckReshuffled(payload.DeckSize))
}

func (ug *UnoGame) OnPlayerWon(payload event.PlayerWonPayload) {
	ug.broadcast(msg.Message.WinnerFound(ug.Name(payload.PlayerID)))
}

func (ug *UnoGame) OnMatchAborted(payload event.MatchAbortedPayload) {
	ug.broadcast(msg.Message.MatchAborted(payload.Reason))
}

// Labels names cards A to Z, then AA, AB... so that every label stays
// unique whatever the hand size.
func Labels(cards []card.Card) ([]string, map[string]card.Card) {
	labels := make([]string, 0, len(cards))
	options := make(map[string]card.Card, len(cards))
	for i, c := range cards {
		label := labelAt(i)
		labels = append(labels, label)
		options[label] = c
	}
	return labels, options
}

func labelAt(index int) string {
	name := ""
	for index++; index > 0; index = (index - 1) / 26 {
		name = string(rune('A'+(index-1)%26)) + name
	}
	return name
}
