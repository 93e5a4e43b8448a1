// Package input delivers discrete key actions to registered handlers.
package input

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Bindings maps actions to handlers. Handlers can be bound and unbound at
// runtime; at most one handler exists per action.
type Bindings struct {
	handlers map[core.Action]func()
}

// NewBindings creates an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{
		handlers: make(map[core.Action]func()),
	}
}

// Bind registers fn for action, replacing any previous handler.
func (b *Bindings) Bind(action core.Action, fn func()) {
	b.handlers[action] = fn
}

// Unbind removes the handler for action, if any.
func (b *Bindings) Unbind(action core.Action) {
	delete(b.handlers, action)
}

// Bound reports whether action has a handler.
func (b *Bindings) Bound(action core.Action) bool {
	_, ok := b.handlers[action]
	return ok
}

// Dispatch runs the handler bound to action synchronously.
// Returns false when no handler is bound.
func (b *Bindings) Dispatch(action core.Action) bool {
	fn, ok := b.handlers[action]
	if !ok {
		return false
	}
	fn()
	return true
}

// Reset removes every handler.
func (b *Bindings) Reset() {
	for a := range b.handlers {
		delete(b.handlers, a)
	}
}
