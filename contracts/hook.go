package contracts

import (
	"context"

	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// Handler is the contract a plugin implements for a single hook.
//
// A handler either returns a full replacement token sequence or a nil Result
// to leave the tokens unchanged. Tokens are never patched in place.
type Handler interface {
	Handle(ctx context.Context, data types.Data, opts types.Options) (*types.Result, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, data types.Data, opts types.Options) (*types.Result, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, data types.Data, opts types.Options) (*types.Result, error) {
	return f(ctx, data, opts)
}
