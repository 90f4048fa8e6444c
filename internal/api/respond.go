package api

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"property-management/internal/schema"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","description":"cannot encode response","status_code":500}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// decodeBody validates the request body against schemaID and decodes it into
// dst. An empty body is treated as {} when allowEmpty is set.
func (a *API) decodeBody(r *http.Request, schemaID string, dst interface{}, allowEmpty bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return &schema.ValidationError{Problems: []string{"cannot read request body"}}
	}
	if len(body) > maxBodyBytes {
		return &schema.ValidationError{Problems: []string{"request body too large"}}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if !allowEmpty {
			return &schema.ValidationError{Problems: []string{"request body is required"}}
		}
		body = []byte("{}")
	}
	if err := a.Validator.Validate(body, schemaID); err != nil {
		return err
	}
	// encoding/json hands explicit nulls to Optional.UnmarshalJSON
	if err := stdjson.Unmarshal(body, dst); err != nil {
		var typeErr *stdjson.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &schema.ValidationError{Problems: []string{fmt.Sprintf("%s: value is out of range or of the wrong type", typeErr.Field)}}
		}
		return &schema.ValidationError{Problems: []string{err.Error()}}
	}
	return nil
}

// pathID reads a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &schema.ValidationError{Problems: []string{fmt.Sprintf("invalid %s %q", name, raw)}}
	}
	return id, nil
}
