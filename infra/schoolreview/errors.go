package schoolreview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Keys whose messages are shown without a field prefix.
var unprefixedKeys = map[string]bool{
	"detail":           true,
	"non_field_errors": true,
	"error":            true,
	"message":          true,
}

// flattenErrorBody turns a REST error body into readable lines, keeping the
// server's field order. Shapes handled: {"field": ["msg"]}, {"detail": "msg"},
// ["msg"], "msg", and nested objects. Non-JSON bodies yield nil.
func flattenErrorBody(data []byte) []string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	out, err := flattenValue(dec, "")
	if err != nil {
		return nil
	}
	return out
}

func flattenValue(dec *json.Decoder, prefix string) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			var out []string
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				child := key
				if unprefixedKeys[key] {
					child = prefix
				} else if prefix != "" {
					child = prefix + "." + key
				}
				msgs, err := flattenValue(dec, child)
				if err != nil {
					return nil, err
				}
				out = append(out, msgs...)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		case '[':
			var out []string
			for dec.More() {
				msgs, err := flattenValue(dec, prefix)
				if err != nil {
					return nil, err
				}
				out = append(out, msgs...)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case nil:
		return nil, nil
	default:
		msg := strings.TrimSpace(fmt.Sprint(v))
		if msg == "" {
			return nil, nil
		}
		if prefix != "" {
			msg = prefix + ": " + msg
		}
		return []string{msg}, nil
	}
}
