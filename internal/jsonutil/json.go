// Package jsonutil provides JSON formatting utilities.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Compact removes insignificant whitespace from a JSON document.
// Returns an error if value is not valid JSON.
func Compact(value string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(value)); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	return buf.String(), nil
}

// Indent formats v as indented JSON followed by a newline.
func Indent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	return append(data, '\n'), nil
}
