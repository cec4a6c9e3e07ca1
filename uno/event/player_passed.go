package event

type PlayerPassedPayload struct {
	PlayerID string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

func (e *Emitter) EmitPlayerPassed(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(PlayerPassedListener); ok {
			listener.OnPlayerPassed(payload)
		}
	}
}
