package event

import "github.com/ratel-online/uno/uno/card"

// CardsDrawnPayload carries the drawn cards themselves; listeners that relay
// it to other players must only reveal the count.
type CardsDrawnPayload struct {
	PlayerID string
	Cards    []card.Card
	Penalty  bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

func (e *Emitter) EmitCardsDrawn(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(CardsDrawnListener); ok {
			listener.OnCardsDrawn(payload)
		}
	}
}
