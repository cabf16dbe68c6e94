package contracts

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Skarlso/formatter-plugin-sdk/types"
)

// ProtocolVersion is the version written into every message.
const ProtocolVersion = 1

// Status tags the outcome of a hook invocation.
type Status string

const (
	// StatusSkip means no change, either because no handler is registered or
	// because the handler declined.
	StatusSkip Status = "skip"
	// StatusOK carries replacement tokens.
	StatusOK Status = "ok"
	// StatusError carries a diagnostic message.
	StatusError Status = "error"
)

// Request is the single message a host writes to a plugin.
type Request struct {
	Version       int           `json:"version"`
	Hook          types.Hook    `json:"hook"`
	Data          types.Data    `json:"data"`
	PluginOptions types.Options `json:"plugin_options"`
}

// NewRequest creates a request for hook with the given data and options.
func NewRequest(hook types.Hook, data types.Data, opts types.Options) *Request {
	if opts == nil {
		opts = types.Options{}
	}
	if data.Tokens == nil {
		data.Tokens = []types.Token{}
	}

	return &Request{
		Version:       ProtocolVersion,
		Hook:          hook,
		Data:          data,
		PluginOptions: opts,
	}
}

// Marshal encodes the request as it is written to a plugin's input.
func (r *Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Response is the single message a plugin writes back.
type Response struct {
	Version int           `json:"version"`
	Status  Status        `json:"status"`
	Data    *types.Result `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Skip creates a no change response.
func Skip() *Response {
	return &Response{Version: ProtocolVersion, Status: StatusSkip}
}

// OK creates a response carrying replacement tokens. A nil token list is
// sent as an empty one.
func OK(result *types.Result) *Response {
	if result == nil || result.Tokens == nil {
		result = &types.Result{Tokens: []types.Token{}}
	}

	return &Response{Version: ProtocolVersion, Status: StatusOK, Data: result}
}

// Failure creates an error response with message.
func Failure(message string) *Response {
	return &Response{Version: ProtocolVersion, Status: StatusError, Error: message}
}

// ErrInvalidResponse is returned when a plugin response cannot be interpreted.
var ErrInvalidResponse = errors.New("invalid plugin response")

// DecodeResponse parses a plugin response as a host would.
func DecodeResponse(raw []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	switch resp.Status {
	case StatusSkip:
		return &resp, nil
	case StatusOK:
		if resp.Data == nil {
			resp.Data = &types.Result{}
		}
		return &resp, nil
	case StatusError:
		if resp.Error == "" {
			resp.Error = "unknown error"
		}
		return &resp, nil
	case "":
		return nil, fmt.Errorf("%w: missing 'status' field", ErrInvalidResponse)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidResponse, resp.Status)
	}
}
