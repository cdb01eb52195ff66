package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/legislate-ai/core-service/internal/domain"
)

// DecodeJSON reads the request body into dst. Exactly one JSON value
// is accepted: trailing garbage after the document is rejected so a
// concatenated body never half-applies.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}

	switch err := dec.Decode(&struct{}{}); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return domain.ErrInvalidJSON(err)
	default:
		return domain.ErrInvalidJSON(errors.New("body must contain a single JSON value"))
	}
}
