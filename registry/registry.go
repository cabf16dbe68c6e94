package registry

import (
	"errors"
	"fmt"

	"github.com/Skarlso/formatter-plugin-sdk/contracts"
	"github.com/Skarlso/formatter-plugin-sdk/types"
)

var (
	// ErrUnknownHook is returned when registering a handler for a hook that does not exist.
	ErrUnknownHook = errors.New("unknown hook")
	// ErrAlreadyRegistered is returned when a hook already has a handler.
	ErrAlreadyRegistered = errors.New("handler already registered")
)

// Registry maps hooks to the handlers a plugin provides. It has one slot per
// known hook; an empty slot means the plugin does not handle that hook.
type Registry struct {
	handlers [types.HookCount]contracts.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds handler to hook.
func (r *Registry) Register(hook types.Hook, handler contracts.Handler) error {
	idx := hook.Index()
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownHook, hook)
	}

	if handler == nil {
		return fmt.Errorf("handler for hook %q is nil", hook)
	}

	if r.handlers[idx] != nil {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, hook)
	}

	r.handlers[idx] = handler
	return nil
}

// Lookup returns the handler for the named hook. The second return value is
// false if the name is not a known hook or no handler is registered for it.
func (r *Registry) Lookup(name string) (contracts.Handler, bool) {
	idx := types.Hook(name).Index()
	if idx < 0 || r.handlers[idx] == nil {
		return nil, false
	}

	return r.handlers[idx], true
}

// Hooks returns the hooks that have a handler, in pipeline order.
func (r *Registry) Hooks() []types.Hook {
	out := make([]types.Hook, 0, types.HookCount)
	for _, h := range types.Hooks() {
		if r.handlers[h.Index()] != nil {
			out = append(out, h)
		}
	}

	return out
}
