package event

import "github.com/ratel-online/uno/uno/card"

type CardPlayedPayload struct {
	PlayerID string
	Card     card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

func (e *Emitter) EmitCardPlayed(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(CardPlayedListener); ok {
			listener.OnCardPlayed(payload)
		}
	}
}
