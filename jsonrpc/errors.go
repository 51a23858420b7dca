package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/spikeekips/nearanywhere/common"
)

const (
	RPCFailedErrorCode common.ErrorCode = iota + 1
	InvalidResponseErrorCode
)

var (
	RPCFailedError       = common.NewErrorType("jsonrpc", RPCFailedErrorCode, "rpc request failed")
	InvalidResponseError = common.NewErrorType("jsonrpc", InvalidResponseErrorCode, "invalid rpc response")
)

const (
	ConstructRequestErrorMessage = "construct request"
	DoHTTPRequestErrorMessage    = "do http request"
	HTTPStatusNotOKErrorMessage  = "http status not ok"
	ReadResponseBodyErrorMessage = "read response body"
	UnmarshalBodyErrorMessage    = "unmarshal body"
)

// Error is the error object of a JSON-RPC response. The node puts the
// structured cause in Name and Cause.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Name    string          `json:"name,omitempty"`
	Cause   json.RawMessage `json:"cause,omitempty"`
}

func (e *Error) Error() string {
	s := fmt.Sprintf("rpc error; code=%d message=%q", e.Code, e.Message)
	if len(e.Name) > 0 {
		s += fmt.Sprintf(" name=%q", e.Name)
	}

	if len(e.Cause) > 0 {
		s += fmt.Sprintf(" cause=%s", string(e.Cause))
	} else if len(e.Data) > 0 {
		s += fmt.Sprintf(" data=%s", string(e.Data))
	}

	return s
}
