package jsonrpc

import (
	"encoding/json"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
)

const Version = "2.0"

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NewRequest makes a request with a random id. params is encoded to JSON;
// nil params is omitted.
func NewRequest(method string, params interface{}) (Request, error) {
	r := Request{
		JSONRPC: Version,
		ID:      uuid.NewV4().String(),
		Method:  method,
	}

	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return Request{}, xerrors.Errorf("%s: %w", ConstructRequestErrorMessage, err)
		}

		r.Params = b
	}

	return r, nil
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Decode unmarshals the result into v. The error of the response is
// returned as it is.
func (r Response) Decode(v interface{}) error {
	if r.Error != nil {
		return r.Error
	}

	if v == nil {
		return nil
	}

	if len(r.Result) < 1 {
		return InvalidResponseError.Newf("empty result; id=%s", r.ID)
	}

	if err := json.Unmarshal(r.Result, v); err != nil {
		return InvalidResponseError.New(xerrors.Errorf("%s: %w", UnmarshalBodyErrorMessage, err))
	}

	return nil
}
