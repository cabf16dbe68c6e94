package sdk

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Skarlso/formatter-plugin-sdk/contracts"
	"github.com/Skarlso/formatter-plugin-sdk/registry"
	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// Handlers maps hooks to the handlers a plugin provides.
type Handlers map[types.Hook]contracts.Handler

// Plugin answers a single hook invocation from the formatter.
type Plugin struct {
	// Manifest holds optional plugin metadata and default options.
	Manifest *types.Manifest

	logger      *slog.Logger
	registry    *registry.Registry
	input       io.Reader
	output      io.Writer
	strictKinds bool
}

// OptionFn configures a Plugin.
type OptionFn func(*Plugin)

// WithInput sets where the request is read from. Defaults to os.Stdin.
func WithInput(r io.Reader) OptionFn {
	return func(p *Plugin) {
		p.input = r
	}
}

// WithOutput sets where the response is written to. Defaults to os.Stdout.
func WithOutput(w io.Writer) OptionFn {
	return func(p *Plugin) {
		p.output = w
	}
}

// WithManifest attaches plugin metadata. Its options are used as defaults
// for options the host does not send.
func WithManifest(m *types.Manifest) OptionFn {
	return func(p *Plugin) {
		p.Manifest = m
	}
}

// WithStrictTokenKinds rejects requests containing tokens of unknown kind.
// By default such tokens are passed to handlers unchanged.
func WithStrictTokenKinds() OptionFn {
	return func(p *Plugin) {
		p.strictKinds = true
	}
}

// NewPlugin creates a plugin serving the given handlers.
func NewPlugin(logger *slog.Logger, handlers Handlers, opts ...OptionFn) (*Plugin, error) {
	p := &Plugin{
		logger:   logger,
		registry: registry.NewRegistry(),
		input:    os.Stdin,
		output:   os.Stdout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.Manifest != nil {
		if err := p.Manifest.Validate(); err != nil {
			return nil, fmt.Errorf("invalid manifest: %w", err)
		}
	}

	for hook, handler := range handlers {
		if err := p.registry.Register(hook, handler); err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return p, nil
}

// Capabilities describes the plugin and the hooks it handles.
func (p *Plugin) Capabilities() types.Capabilities {
	c := types.Capabilities{Hooks: p.registry.Hooks()}
	if p.Manifest != nil {
		c.Name = p.Manifest.Name
		c.Version = p.Manifest.Version
		c.Description = p.Manifest.Description
	}

	return c
}

// Run reads one request, dispatches it and writes one response.
// A non-nil error means an error response was written and the process
// should exit with ExitCode(err).
func (p *Plugin) Run(ctx context.Context) error {
	logger := p.logger.With("invocation", uuid.NewString())

	resp, err := p.handle(ctx, logger)
	if err != nil {
		logger.ErrorContext(ctx, "hook invocation failed", "error", err)
		resp = contracts.Failure(errorMessage(err))
	}

	if werr := writeMessage(p.output, resp); werr != nil {
		return errors.Join(err, fmt.Errorf("failed to write response: %w", werr))
	}

	return err
}

func (p *Plugin) handle(ctx context.Context, logger *slog.Logger) (*contracts.Response, error) {
	raw, err := io.ReadAll(p.input)
	if err != nil {
		return nil, &ProtocolError{Reason: "failed to read request", Err: err}
	}

	env, err := parseEnvelope(raw)
	if err != nil {
		return nil, err
	}

	logger = logger.With("hook", env.hook)
	if env.version != contracts.ProtocolVersion {
		logger.WarnContext(ctx, "unexpected protocol version", "version", env.version)
	}

	handler, ok := p.registry.Lookup(string(env.hook))
	if !ok {
		logger.DebugContext(ctx, "no handler registered, skipping")
		return contracts.Skip(), nil
	}

	req, err := env.request(p.strictKinds)
	if err != nil {
		return nil, err
	}

	opts := req.PluginOptions
	if p.Manifest != nil {
		opts = p.Manifest.Options.Merge(opts)
	}

	logger.DebugContext(ctx, "invoking handler", "tokens", len(req.Data.Tokens))

	result, err := invoke(ctx, req.Hook, handler, req.Data, opts)
	if err != nil {
		return nil, err
	}

	if result == nil {
		logger.DebugContext(ctx, "handler declined")
		return contracts.Skip(), nil
	}

	if err := types.ValidateTokens(result.Tokens); err != nil {
		return nil, &HandlerError{Hook: req.Hook, Err: fmt.Errorf("invalid output: %w", err)}
	}

	logger.DebugContext(ctx, "handler returned tokens", "tokens", len(result.Tokens))

	return contracts.OK(result), nil
}

// invoke calls the handler and turns both returned errors and panics into a HandlerError.
func invoke(ctx context.Context, hook types.Hook, handler contracts.Handler, data types.Data, opts types.Options) (result *types.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &HandlerError{Hook: hook, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	result, err = handler.Handle(ctx, data, opts)
	if err != nil {
		return nil, &HandlerError{Hook: hook, Err: err}
	}

	return result, nil
}

// writeMessage writes v as a single JSON line and flushes it.
func writeMessage(w io.Writer, v any) error {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return buf.Flush()
}
