package event

type TurnSkippedPayload struct {
	PlayerID string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

func (e *Emitter) EmitTurnSkipped(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(TurnSkippedListener); ok {
			listener.OnTurnSkipped(payload)
		}
	}
}

type TurnOrderReversedPayload struct {
	Direction int
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

func (e *Emitter) EmitTurnOrderReversed(payload TurnOrderReversedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(TurnOrderReversedListener); ok {
			listener.OnTurnOrderReversed(payload)
		}
	}
}
