package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	emitter := event.NewEmitter()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter.AddListener(listenerOne)
	emitter.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerID: "Someone",
			Card:     card.NewWildCard(),
		},
		{
			PlayerID: "Somebody",
			Card:     card.NewDrawTwoCard(color.Green),
		},
	}

	for _, payload := range payloads {
		emitter.EmitCardPlayed(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestColorPicked(t *testing.T) {
	emitter := event.NewEmitter()
	listener := event.NewDummyListener()
	emitter.AddListener(listener)

	payloads := []event.ColorPickedPayload{
		{PlayerID: "Someone", Color: color.Red},
		{PlayerID: "Somebody", Color: color.Yellow},
	}
	for _, payload := range payloads {
		emitter.EmitColorPicked(payload)
	}

	require.ElementsMatch(t, payloads, listener.ReceivedPayloads())
}

func TestFirstCardPlayed(t *testing.T) {
	emitter := event.NewEmitter()
	listener := event.NewDummyListener()
	emitter.AddListener(listener)

	emitter.EmitFirstCardPlayed(event.FirstCardPlayedPayload{Card: card.NewReverseCard(color.Blue)})

	require.Equal(t, []interface{}{
		event.FirstCardPlayedPayload{Card: card.NewReverseCard(color.Blue)},
	}, listener.ReceivedPayloads())
}

func TestPlayerPassed(t *testing.T) {
	emitter := event.NewEmitter()
	listener := event.NewDummyListener()
	emitter.AddListener(listener)

	emitter.EmitPlayerPassed(event.PlayerPassedPayload{PlayerID: "Someone"})
	emitter.EmitPlayerPassed(event.PlayerPassedPayload{PlayerID: "Somebody"})

	require.Equal(t, []interface{}{
		event.PlayerPassedPayload{PlayerID: "Someone"},
		event.PlayerPassedPayload{PlayerID: "Somebody"},
	}, listener.ReceivedPayloads())
}

type wonOnly struct {
	winners []string
}

func (l *wonOnly) OnPlayerWon(payload event.PlayerWonPayload) {
	l.winners = append(l.winners, payload.PlayerID)
}

func TestPartialListener(t *testing.T) {
	emitter := event.NewEmitter()
	listener := &wonOnly{}
	emitter.AddListener(listener)

	emitter.EmitTurnSkipped(event.TurnSkippedPayload{PlayerID: "B"})
	emitter.EmitDeckReshuffled(event.DeckReshuffledPayload{DeckSize: 40})
	emitter.EmitPlayerWon(event.PlayerWonPayload{PlayerID: "A"})

	require.Equal(t, []string{"A"}, listener.winners)
}

func TestMatchesAreIsolated(t *testing.T) {
	first := event.NewEmitter()
	second := event.NewEmitter()
	listener := event.NewDummyListener()
	first.AddListener(listener)

	second.EmitTurnOrderReversed(event.TurnOrderReversedPayload{Direction: -1})

	require.Empty(t, listener.ReceivedPayloads())
}
