package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skarlso/formatter-plugin-sdk/contracts"
	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// MockHandler implements contracts.Handler for testing
type MockHandler struct {
	name string
}

func (m *MockHandler) Handle(ctx context.Context, data types.Data, opts types.Options) (*types.Result, error) {
	return nil, nil
}

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()

	handler := &MockHandler{name: "banner"}
	err := registry.Register(types.BeforeAll, handler)
	require.NoError(t, err)

	got, ok := registry.Lookup("formatter.before_all")
	require.True(t, ok)
	require.Equal(t, handler, got)

	// Try to register the same hook again
	err = registry.Register(types.BeforeAll, &MockHandler{name: "another"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAlreadyRegistered))
	require.Contains(t, err.Error(), "already registered")
}

func TestRegistryUnknownHook(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(types.Hook("formatter.before_print"), &MockHandler{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownHook))

	err = registry.Register(types.AfterAll, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nil")
}

func TestRegistryLookupMissing(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(types.BeforeAll, &MockHandler{}))

	_, ok := registry.Lookup("formatter.after_normalize")
	require.False(t, ok)

	_, ok = registry.Lookup("not-a-hook")
	require.False(t, ok)

	_, ok = registry.Lookup("")
	require.False(t, ok)
}

func TestRegistryHooks(t *testing.T) {
	registry := NewRegistry()
	require.Empty(t, registry.Hooks())

	require.NoError(t, registry.Register(types.AfterAll, contracts.HandlerFunc(
		func(ctx context.Context, data types.Data, opts types.Options) (*types.Result, error) {
			return nil, nil
		})))
	require.NoError(t, registry.Register(types.BeforeAll, &MockHandler{}))

	require.Equal(t, []types.Hook{types.BeforeAll, types.AfterAll}, registry.Hooks())
}
