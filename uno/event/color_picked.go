package event

import "github.com/ratel-online/uno/uno/card/color"

type ColorPickedPayload struct {
	PlayerID string
	Color    color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

func (e *Emitter) EmitColorPicked(payload ColorPickedPayload) {
	for _, listener := range e.listeners {
		if listener, ok := listener.(ColorPickedListener); ok {
			listener.OnColorPicked(payload)
		}
	}
}
