package types

import "fmt"

// Hook names an extension point in the formatter pipeline.
type Hook string

const (
	// BeforeAll runs before any processing.
	BeforeAll Hook = "formatter.before_all"
	// AfterNormalize runs after token normalization.
	AfterNormalize Hook = "formatter.after_normalize"
	// BeforeWhitespace runs before whitespace insertion.
	BeforeWhitespace Hook = "formatter.before_whitespace"
	// AfterAll runs after all formatting is done.
	AfterAll Hook = "formatter.after_all"
)

// HookCount is the number of known hooks.
const HookCount = 4

var hooks = [HookCount]Hook{BeforeAll, AfterNormalize, BeforeWhitespace, AfterAll}

// Hooks returns all hooks in pipeline order.
func Hooks() []Hook {
	out := hooks
	return out[:]
}

// Index returns the position of h in pipeline order, or -1 if h is unknown.
func (h Hook) Index() int {
	switch h {
	case BeforeAll:
		return 0
	case AfterNormalize:
		return 1
	case BeforeWhitespace:
		return 2
	case AfterAll:
		return 3
	default:
		return -1
	}
}

// Valid reports whether h is a known hook.
func (h Hook) Valid() bool {
	return h.Index() >= 0
}

// ParseHook converts a hook name into a Hook.
func ParseHook(name string) (Hook, error) {
	h := Hook(name)
	if !h.Valid() {
		return "", fmt.Errorf("unknown hook %q", name)
	}

	return h, nil
}
