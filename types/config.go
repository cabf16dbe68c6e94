package types

// FormatConfig holds the formatter settings the host was run with.
// Handlers treat it as read-only.
type FormatConfig struct {
	PrintWidth     int  `json:"print_width"`
	TabWidth       int  `json:"tab_width"`
	UseTabs        bool `json:"use_tabs"`
	Semi           bool `json:"semi"`
	SingleQuote    bool `json:"single_quote"`
	BracketSpacing bool `json:"bracket_spacing"`
}

// DefaultFormatConfig returns the settings the host uses when nothing is configured.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		PrintWidth:     80,
		TabWidth:       2,
		UseTabs:        false,
		Semi:           true,
		SingleQuote:    false,
		BracketSpacing: true,
	}
}

// Data is the state passed to a hook handler.
type Data struct {
	Tokens []Token      `json:"tokens"`
	Config FormatConfig `json:"config"`
}

// Result is a full replacement token sequence returned by a handler.
type Result struct {
	Tokens []Token `json:"tokens"`
}

// Options is plugin specific configuration supplied by the host.
type Options map[string]string

// Get returns the value for key or def if the key is not set.
func (o Options) Get(key, def string) string {
	if v, ok := o[key]; ok {
		return v
	}

	return def
}

// Merge returns a new Options with the values of override applied over o.
func (o Options) Merge(override Options) Options {
	out := make(Options, len(o)+len(override))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}

	return out
}
