package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var errInvalidBody = errors.New("invalid request body")

// MissingParameterError reports an absent top-level request key.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return "Parameter missing: " + e.Name
}

// decodeWrapped decodes the object found under key, e.g. {"doctor": {...}}.
// An absent, null or empty object counts as missing.
func decodeWrapped(r *http.Request, key string, dst interface{}) error {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return &MissingParameterError{Name: key}
		}
		return errInvalidBody
	}

	raw, ok := body[key]
	if !ok || string(raw) == "null" {
		return &MissingParameterError{Name: key}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return errInvalidBody
	}
	if len(fields) == 0 {
		return &MissingParameterError{Name: key}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// parseID returns notFound when the path id is not a UUID, since no row can match it.
func parseID(r *http.Request, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
