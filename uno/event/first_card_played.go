package event

import "github.com/ratel-online/uno/uno/card"

type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

func (e *Emitter) EmitFirstCardPlayed(payload FirstCardPlayedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(FirstCardPlayedListener); ok {
			listener.OnFirstCardPlayed(payload)
		}
	}
}
