package sdk

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"github.com/Skarlso/formatter-plugin-sdk/contracts"
	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// rawRequest keeps every field undecoded so presence and JSON type can be
// checked before decoding.
type rawRequest struct {
	Version       json.RawMessage `json:"version"`
	Hook          json.RawMessage `json:"hook"`
	Data          json.RawMessage `json:"data"`
	PluginOptions json.RawMessage `json:"plugin_options"`
}

// envelope is a request whose top level fields have been checked. Data and
// options stay undecoded until a handler is known to exist.
type envelope struct {
	version float64
	hook    types.Hook
	data    json.RawMessage
	options json.RawMessage
}

// parseEnvelope checks the request's top level fields only.
func parseEnvelope(raw []byte) (*envelope, error) {
	if !utf8.Valid(raw) {
		return nil, &ProtocolError{Reason: "request is not valid UTF-8"}
	}

	var req rawRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &ProtocolError{Reason: "malformed JSON", Err: err}
	}

	var version float64
	if !isNumber(req.Version) {
		return nil, &ProtocolError{Reason: "missing or invalid 'version' field"}
	}
	if err := json.Unmarshal(req.Version, &version); err != nil {
		return nil, &ProtocolError{Reason: "missing or invalid 'version' field", Err: err}
	}

	var hook string
	if jsonKind(req.Hook) != '"' {
		return nil, &ProtocolError{Reason: "missing or invalid 'hook' field"}
	}
	if err := json.Unmarshal(req.Hook, &hook); err != nil {
		return nil, &ProtocolError{Reason: "missing or invalid 'hook' field", Err: err}
	}

	if jsonKind(req.Data) != '{' {
		return nil, &ProtocolError{Reason: "missing or invalid 'data' field"}
	}

	return &envelope{
		version: version,
		hook:    types.Hook(hook),
		data:    req.Data,
		options: req.PluginOptions,
	}, nil
}

// request decodes data and options into a full request. Token kinds are
// checked only when strictKinds is set.
func (e *envelope) request(strictKinds bool) (*contracts.Request, error) {
	var data types.Data
	if err := json.Unmarshal(e.data, &data); err != nil {
		return nil, &ProtocolError{Reason: "invalid 'data' field", Err: err}
	}

	if strictKinds {
		if err := types.ValidateTokens(data.Tokens); err != nil {
			return nil, &ProtocolError{Reason: "invalid 'data.tokens' field", Err: err}
		}
	}

	opts := types.Options{}
	switch jsonKind(e.options) {
	case 0, 'n':
	case '{':
		if err := json.Unmarshal(e.options, &opts); err != nil {
			return nil, &ProtocolError{Reason: "invalid 'plugin_options' field", Err: err}
		}
	default:
		return nil, &ProtocolError{Reason: "invalid 'plugin_options' field"}
	}

	return &contracts.Request{
		Version:       int(e.version),
		Hook:          e.hook,
		Data:          data,
		PluginOptions: opts,
	}, nil
}

// jsonKind returns the first significant byte of a JSON value, or 0 if the
// value is absent.
func jsonKind(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}

func isNumber(raw json.RawMessage) bool {
	c := jsonKind(raw)
	return c == '-' || (c >= '0' && c <= '9')
}
