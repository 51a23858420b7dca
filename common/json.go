package common

import (
	"bytes"
	"encoding/json"
)

func EncodeJSON(i interface{}, indent bool, escapeHTML bool) ([]byte, error) {
	buffer := &bytes.Buffer{}
	e := json.NewEncoder(buffer)
	e.SetEscapeHTML(escapeHTML)
	if indent {
		e.SetIndent("", "  ")
	}

	if err := e.Encode(i); err != nil {
		return nil, err
	}

	return bytes.TrimSpace(buffer.Bytes()), nil
}
