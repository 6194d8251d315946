package utils

import (
	"strings"
)

// ParseOptionalBool parses a query-string flag. An empty or unrecognised value
// yields nil so callers can tell "not filtered" from "false".
func ParseOptionalBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "t":
		v := true
		return &v
	case "0", "false", "no", "off", "f":
		v := false
		return &v
	}
	return nil
}

// ParseOptionalID parses an optional positive ID query parameter.
func ParseOptionalID(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := ParseID(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}
