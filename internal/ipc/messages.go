package ipc

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Request is one command invocation as sent by a client.
type Request struct {
	ID      string          `json:"id,omitempty"`
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response answers a Request. Exactly one of Result and Error is meaningful,
// selected by OK.
type Response struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// ErrorBody is the payload of a failed HTTP invocation.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// NewRequestID returns a fresh correlation ID for requests that arrive without one.
func NewRequestID() string {
	return uuid.NewString()
}
