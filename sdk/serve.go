package sdk

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Skarlso/formatter-plugin-sdk/contracts"
)

// LogLevelEnv names the environment variable that sets the plugin's log level.
const LogLevelEnv = "FORMATTER_PLUGIN_LOG_LEVEL"

// CapabilitiesCommand is the argument that makes a plugin describe itself
// instead of answering a request.
const CapabilitiesCommand = "capabilities"

// Serve runs the plugin process: it answers exactly one request from stdin
// on stdout and exits. It never returns.
func Serve(handlers Handlers, opts ...OptionFn) {
	// log messages are shared over stderr so stdout only carries the response.
	logger := NewLogger(os.Stderr, os.Getenv(LogLevelEnv))

	os.Exit(Execute(context.Background(), logger, os.Args[1:], os.Stdout, handlers, opts...))
}

// Execute is Serve without the process exit. It returns the exit code.
func Execute(ctx context.Context, logger *slog.Logger, args []string, stdout io.Writer, handlers Handlers, opts ...OptionFn) int {
	opts = append([]OptionFn{WithOutput(stdout)}, opts...)

	plugin, err := NewPlugin(logger, handlers, opts...)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create plugin", "error", err)
		if werr := writeMessage(stdout, contracts.Failure(err.Error())); werr != nil {
			logger.ErrorContext(ctx, "failed to write response", "error", werr)
		}

		return 1
	}

	if len(args) > 0 && args[0] == CapabilitiesCommand {
		if err := writeMessage(plugin.output, plugin.Capabilities()); err != nil {
			logger.ErrorContext(ctx, "failed to print capabilities", "error", err)
			return 1
		}

		logger.DebugContext(ctx, "capabilities sent")
		return 0
	}

	return ExitCode(plugin.Run(ctx))
}

// NewLogger creates the JSON logger plugins write to stderr with. level is
// one of debug, info, warn or error; anything else means warn.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			lvl = slog.LevelWarn
		}
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
}
