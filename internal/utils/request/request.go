// Package request decodes JSON request bodies.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned when the request carries no body at all.
var ErrEmptyBody = errors.New("request body is empty")

// maxBodyBytes caps request bodies; every payload here is a handful of
// short strings.
const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON value from r's body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(body).Decode(dst)
	if errors.Is(err, io.EOF) {
		// io.EOF means the body was completely empty.
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}
