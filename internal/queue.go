package internal

// EffectType distinguishes DOM-render effects from ordinary user effects,
// so the former always settle before the latter observe a consistent DOM.
type EffectType int

const (
	EffectRender EffectType = iota
	EffectUser
)

// EffectQueue buffers effect bodies raised during a scheduler drain and
// runs them afterwards, Render effects before User effects.
type EffectQueue struct {
	effects map[EffectType][]func()
}

// NewEffectQueue returns an empty queue for both effect types.
func NewEffectQueue() *EffectQueue {
	return &EffectQueue{
		effects: map[EffectType][]func(){
			EffectRender: {},
			EffectUser:   {},
		},
	}
}

// Enqueue buffers fn to run the next time RunEffects(typ) is called.
func (q *EffectQueue) Enqueue(typ EffectType, fn func()) {
	q.effects[typ] = append(q.effects[typ], fn)
}

// RunEffects drains and runs every effect of the given type, in the order
// enqueued. Effects enqueued by a running effect are not visited by this
// call (they land in the next call, mirroring Emitter.Emit's semantics
// for late additions).
func (q *EffectQueue) RunEffects(typ EffectType) {
	effects := q.effects[typ]
	q.effects[typ] = nil

	for _, effect := range effects {
		effect()
	}
}
