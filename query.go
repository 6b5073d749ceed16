package bahncopilot

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// parseWhen parses an optional RFC 3339 timestamp parameter, falling back
// to fallback when the parameter is absent.
func parseWhen(field, s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &ValidationError{Msg: field + " must be an ISO 8601 timestamp"}
	}
	return t, nil
}

// parseTransfers parses the optional maximum-transfers parameter.
// An absent parameter means "unconstrained" and is reported as -1.
func parseTransfers(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return -1, &ValidationError{Msg: "transfers must be a non-negative integer"}
	}
	return v, nil
}

func errorPayload(msg string) []byte {
	b, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: msg})
	return b
}
