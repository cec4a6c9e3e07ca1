package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/sasha-s/go-deadlock"
)

// Game is the state of a single match. All exported methods are safe for
// concurrent use; they are serialized on the match's own lock.
type Game struct {
	mu deadlock.Mutex

	matchID string
	rules   Rules
	intn    func(int) int
	preset  []card.Card
	events  *event.Emitter

	players *Cycler
	hands   map[string]*Hand
	deck    *Deck
	pile    *Pile

	status   Status
	winner   string
	topColor color.Color
	topValue card.Value
	skipNext bool

	pending     Pending
	pendingDraw int
	deferred    []action.Action
	opening     bool

	hasDrawn   bool
	drawn      card.Card
	reshuffled bool
}

// New creates a match for 2 to 10 distinct players, seated in the given
// order. An empty matchID gets a random one.
func New(matchID string, playerIDs []string, opts ...Option) (*Game, error) {
	if len(playerIDs) < consts.MinPlayers || len(playerIDs) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	hands := make(map[string]*Hand, len(playerIDs))
	for _, id := range playerIDs {
		if _, ok := hands[id]; ok || id == "" {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		hands[id] = NewHand()
	}
	if matchID == "" {
		matchID = uuid.NewString()
	}
	seats := make([]string, len(playerIDs))
	copy(seats, playerIDs)
	g := &Game{
		matchID: matchID,
		intn:    rand.Intn,
		events:  event.NewEmitter(),
		players: NewCycler(seats),
		hands:   hands,
		pile:    NewPile(),
		status:  Created,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) MatchID() string {
	return g.matchID
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Players() []string {
	return g.players.Elements()
}

func (g *Game) AddListener(listener interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events.AddListener(listener)
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

func (g *Game) Current() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.players.Current()
}

// Begin shuffles, deals consts.HandSize cards to each player in seat order
// and turns up the opening card. The first seat moves first.
func (g *Game) Begin() (BeginState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != Created {
		return BeginState{}, consts.ErrorsMatchStarted
	}
	if g.preset != nil {
		g.deck = NewDeckFrom(g.preset, g.intn)
	} else {
		g.deck = NewDeck(g.intn)
	}
	if g.deck.Len() < consts.HandSize*g.players.Len()+1 {
		return BeginState{}, consts.ErrorsDeckExhausted
	}
	for round := 0; round < consts.HandSize; round++ {
		g.players.ForEach(func(playerID string) {
			c, _ := g.deck.Pop()
			g.hands[playerID].AddCards(c)
		})
	}
	opening, err := g.drawOpeningCard()
	if err != nil {
		return BeginState{}, err
	}
	g.pile.Add(opening)
	g.topColor = opening.Color
	g.topValue = opening.Value
	g.status = Running
	g.players.Next()
	g.events.EmitFirstCardPlayed(event.FirstCardPlayedPayload{Card: opening})

	kind := Continue
	if opening.Value == card.ChangeColor {
		g.pending = PendingColor
		g.opening = true
		kind = AwaitingColorChoice
	}
	return BeginState{
		PublicState: g.publicState(),
		Kind:        kind,
		Opening:     opening,
	}, nil
}

// drawOpeningCard never opens with a wild draw four: such a card goes back
// into the deck, which is reshuffled before the next try.
func (g *Game) drawOpeningCard() (card.Card, error) {
	for attempt := 0; attempt <= g.deck.Len(); attempt++ {
		c, ok := g.deck.Pop()
		if !ok {
			break
		}
		if c.Value != card.DrawFour {
			return c, nil
		}
		g.deck.Push(c)
		g.deck.Shuffle()
	}
	return card.Card{}, consts.ErrorsDeckExhausted
}

func (g *Game) PlayCard(playerID string, c card.Card) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}
	hand := g.hands[playerID]
	if g.pending != PendingNone || !hand.Contains(c) {
		return MoveResult{}, consts.ErrorsIllegalMove
	}
	if g.hasDrawn && c != g.drawn {
		return MoveResult{}, consts.ErrorsIllegalMove
	}
	if !Playable(c, g.topColor, g.topValue) {
		return MoveResult{}, consts.ErrorsIllegalMove
	}

	g.reshuffled = false
	g.hasDrawn = false
	hand.RemoveCard(c)
	g.pile.Add(c)
	g.topColor = c.Color
	g.topValue = c.Value
	g.events.EmitCardPlayed(event.CardPlayedPayload{PlayerID: playerID, Card: c})

	result := MoveResult{PlayerID: playerID, Card: c, Color: c.Color}
	if hand.Empty() {
		g.status = Won
		g.winner = playerID
		g.events.EmitPlayerWon(event.PlayerWonPayload{PlayerID: playerID})
		result.Kind = PlayerWon
		result.Winner = playerID
		return result, nil
	}
	g.deferred = c.Actions()
	return g.resolve(&result)
}

// DrawCard draws one card for the current player. A playable card keeps the
// turn; anything else passes it on.
func (g *Game) DrawCard(playerID string) (DrawResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkTurn(playerID); err != nil {
		return DrawResult{}, err
	}
	if g.pending != PendingNone {
		return DrawResult{}, consts.ErrorsIllegalMove
	}
	if g.hasDrawn {
		return DrawResult{}, consts.ErrorsAlreadyDrew
	}

	g.reshuffled = false
	result := DrawResult{MoveResult: MoveResult{PlayerID: playerID}}
	c, err := g.drawOne()
	if err != nil {
		result.Kind = NoContest
		return result, err
	}
	g.hands[playerID].AddCards(c)
	g.events.EmitCardsDrawn(event.CardsDrawnPayload{PlayerID: playerID, Cards: []card.Card{c}})
	result.Drawn = c

	if Playable(c, g.topColor, g.topValue) {
		g.hasDrawn = true
		g.drawn = c
		result.Playable = true
		g.refill()
		result.Next = playerID
		result.Reshuffled = g.reshuffled
		result.Kind = Continue
		if g.reshuffled {
			result.Kind = RoundRestart
		}
		return result, nil
	}
	g.events.EmitPlayerPassed(event.PlayerPassedPayload{PlayerID: playerID})
	moved, err := g.finish(&result.MoveResult)
	result.MoveResult = moved
	return result, err
}

// Pass ends the turn of a player who drew a playable card and kept it.
func (g *Game) Pass(playerID string) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}
	if g.pending != PendingNone {
		return MoveResult{}, consts.ErrorsIllegalMove
	}
	if !g.hasDrawn {
		return MoveResult{}, consts.ErrorsMustDrawFirst
	}
	g.reshuffled = false
	g.events.EmitPlayerPassed(event.PlayerPassedPayload{PlayerID: playerID})
	return g.finish(&MoveResult{PlayerID: playerID})
}

func (g *Game) ChooseColor(playerID string, c color.Color) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}
	if g.pending != PendingColor {
		return MoveResult{}, consts.ErrorsNotAwaitingColor
	}
	if !c.Valid() {
		return MoveResult{}, consts.ErrorsInvalidColor
	}

	g.reshuffled = false
	g.topColor = c
	g.pending = PendingNone
	g.events.EmitColorPicked(event.ColorPickedPayload{PlayerID: playerID, Color: c})
	top, _ := g.pile.Top()
	result := MoveResult{PlayerID: playerID, Card: top, Color: c}
	if g.opening {
		// The opening wild is only colored; its chooser still plays first.
		g.opening = false
		result.Kind = Continue
		result.Next = playerID
		return result, nil
	}
	return g.resolve(&result)
}

// SelectDrawTarget answers AwaitingDrawTarget. The target forfeits its turn
// only when it is the seat that would move next.
func (g *Game) SelectDrawTarget(playerID, targetID string) (MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkTurn(playerID); err != nil {
		return MoveResult{}, err
	}
	if g.pending != PendingTarget {
		return MoveResult{}, consts.ErrorsNotAwaitingTarget
	}
	if _, ok := g.hands[targetID]; !ok || targetID == playerID {
		return MoveResult{}, consts.ErrorsInvalidTarget
	}

	g.reshuffled = false
	amount := g.pendingDraw
	g.pending = PendingNone
	g.pendingDraw = 0
	if targetID != g.players.Peek(1) {
		g.skipNext = false
	}
	top, _ := g.pile.Top()
	result := MoveResult{PlayerID: playerID, Card: top, Color: g.topColor}
	if err := g.penalize(targetID, amount, &result); err != nil {
		return result, err
	}
	return g.resolve(&result)
}

// HasLegalPlay reports whether playerID could play a card from hand right
// now. It is false outside a running match and while a choice is pending.
func (g *Game) HasLegalPlay(playerID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	hand, ok := g.hands[playerID]
	if !ok {
		return false, consts.ErrorsUnknownPlayer
	}
	if g.status != Running || g.pending != PendingNone {
		return false, nil
	}
	return len(hand.PlayableCards(g.topColor, g.topValue)) > 0, nil
}

func (g *Game) PublicState() PublicState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.publicState()
}

func (g *Game) PlayerView(playerID string) (PlayerView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	hand, ok := g.hands[playerID]
	if !ok {
		return PlayerView{}, consts.ErrorsUnknownPlayer
	}
	view := PlayerView{
		PublicState: g.publicState(),
		PlayerID:    playerID,
		Hand:        hand.Cards(),
		Playable:    []card.Card{},
	}
	if g.status != Running {
		return view, nil
	}
	isCurrent := g.players.Current() == playerID
	switch {
	case isCurrent && g.pending != PendingNone:
	case isCurrent && g.hasDrawn:
		view.HasDrawn = true
		view.Playable = []card.Card{g.drawn}
	default:
		view.Playable = hand.PlayableCards(g.topColor, g.topValue)
	}
	return view, nil
}

func (g *Game) publicState() PublicState {
	counts := make(map[string]int, len(g.hands))
	for id, hand := range g.hands {
		counts[id] = hand.Size()
	}
	state := PublicState{
		MatchID:     g.matchID,
		Status:      g.status,
		TopColor:    g.topColor,
		TopValue:    g.topValue,
		Direction:   g.players.Direction(),
		Players:     g.players.Elements(),
		HandCounts:  counts,
		DiscardSize: g.pile.Len(),
		Pending:     g.pending,
		PendingDraw: g.pendingDraw,
		Winner:      g.winner,
	}
	if top, ok := g.pile.Top(); ok {
		state.TopCard = top
	}
	if g.deck != nil {
		state.DeckSize = g.deck.Len()
	}
	if g.status != Created {
		state.Current = g.players.Current()
	}
	return state
}

func (g *Game) checkTurn(playerID string) error {
	switch g.status {
	case Created:
		return consts.ErrorsMatchNotStarted
	case Won, Aborted:
		return consts.ErrorsMatchOver
	}
	if _, ok := g.hands[playerID]; !ok {
		return consts.ErrorsUnknownPlayer
	}
	if g.players.Current() != playerID {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

// resolve applies the deferred actions of the top card in order, stopping
// when one of them needs input from the player.
func (g *Game) resolve(result *MoveResult) (MoveResult, error) {
	for len(g.deferred) > 0 {
		next := g.deferred[0]
		g.deferred = g.deferred[1:]
		switch next := next.(type) {
		case action.SkipTurnAction:
			g.skipNext = true
		case action.ReverseTurnsAction:
			g.players.Reverse()
			g.events.EmitTurnOrderReversed(event.TurnOrderReversedPayload{Direction: g.players.Direction()})
			if g.rules.TwoPlayerReverseSkips && g.players.Len() == 2 {
				g.skipNext = true
			}
		case action.PickColorAction:
			g.pending = PendingColor
			return g.suspend(result, AwaitingColorChoice), nil
		case action.DrawCardsAction:
			if g.rules.ChooseDrawTarget {
				g.pending = PendingTarget
				g.pendingDraw = next.Amount()
				result.PendingDraw = next.Amount()
				return g.suspend(result, AwaitingDrawTarget), nil
			}
			if err := g.penalize(g.players.Peek(1), next.Amount(), result); err != nil {
				return *result, err
			}
		}
	}
	return g.finish(result)
}

func (g *Game) suspend(result *MoveResult, kind Kind) MoveResult {
	result.Kind = kind
	result.Next = g.players.Current()
	result.Reshuffled = g.reshuffled
	return *result
}

// finish ends the turn: it consumes a pending skip, moves to the next seat
// and refills the deck if it ran dry.
func (g *Game) finish(result *MoveResult) (MoveResult, error) {
	seats := 1
	if g.skipNext {
		seats = 2
		result.Skipped = g.players.Peek(1)
		g.events.EmitTurnSkipped(event.TurnSkippedPayload{PlayerID: result.Skipped})
	}
	g.skipNext = false
	g.hasDrawn = false
	g.drawn = card.Card{}
	g.deferred = nil
	result.Next = g.players.Advance(seats)
	g.refill()
	result.Reshuffled = g.reshuffled
	result.Kind = Continue
	if g.reshuffled {
		result.Kind = RoundRestart
	}
	return *result, nil
}

// penalize makes victim draw amount cards. Running out of cards entirely
// ends the match without a winner.
func (g *Game) penalize(victim string, amount int, result *MoveResult) error {
	cards := make([]card.Card, 0, amount)
	var err error
	for i := 0; i < amount; i++ {
		var c card.Card
		if c, err = g.drawOne(); err != nil {
			break
		}
		cards = append(cards, c)
	}
	g.hands[victim].AddCards(cards...)
	result.Victim = victim
	result.Penalty = len(cards)
	g.events.EmitCardsDrawn(event.CardsDrawnPayload{PlayerID: victim, Cards: cards, Penalty: true})
	if err != nil {
		result.Kind = NoContest
		result.Reshuffled = g.reshuffled
		return err
	}
	return nil
}

func (g *Game) drawOne() (card.Card, error) {
	if g.deck.Len() == 0 {
		if err := g.reshuffleFromDiscard(); err != nil {
			return card.Card{}, err
		}
	}
	c, _ := g.deck.Pop()
	return c, nil
}

// refill reshuffles an empty deck ahead of the next draw. With nothing below
// the top card it leaves the deck empty; only a draw that is actually
// required can end the match.
func (g *Game) refill() {
	if g.deck.Len() == 0 && g.pile.Len() > 1 {
		_ = g.reshuffleFromDiscard()
	}
}

// reshuffleFromDiscard moves every discard except the top card back into
// the deck and shuffles it.
func (g *Game) reshuffleFromDiscard() error {
	under := g.pile.TakeUnder()
	if len(under) == 0 && g.deck.Len() == 0 {
		g.status = Aborted
		g.pending = PendingNone
		g.events.EmitMatchAborted(event.MatchAbortedPayload{Reason: consts.ErrorsDeckExhausted.Msg})
		return consts.ErrorsDeckExhausted
	}
	g.deck.Push(under...)
	g.deck.Shuffle()
	g.reshuffled = true
	g.events.EmitDeckReshuffled(event.DeckReshuffledPayload{DeckSize: g.deck.Len()})
	return nil
}
