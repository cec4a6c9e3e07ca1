package event

type DeckReshuffledPayload struct {
	DeckSize int
}

type DeckReshuffledListener interface {
	OnDeckReshuffled(DeckReshuffledPayload)
}

func (e *Emitter) EmitDeckReshuffled(payload DeckReshuffledPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(DeckReshuffledListener); ok {
			listener.OnDeckReshuffled(payload)
		}
	}
}

type PlayerWonPayload struct {
	PlayerID string
}

type PlayerWonListener interface {
	OnPlayerWon(PlayerWonPayload)
}

func (e *Emitter) EmitPlayerWon(payload PlayerWonPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(PlayerWonListener); ok {
			listener.OnPlayerWon(payload)
		}
	}
}

type MatchAbortedPayload struct {
	Reason string
}

type MatchAbortedListener interface {
	OnMatchAborted(MatchAbortedPayload)
}

func (e *Emitter) EmitMatchAborted(payload MatchAbortedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(MatchAbortedListener); ok {
			listener.OnMatchAborted(payload)
		}
	}
}
