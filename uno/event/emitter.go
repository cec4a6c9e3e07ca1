package event

// Emitter fans events of a single match out to its listeners. A listener
// receives only the events whose listener interface it implements.
type Emitter struct {
	listeners []interface{}
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddListener(listener interface{}) {
	e.listeners = append(e.listeners, listener)
}
