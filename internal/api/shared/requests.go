package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every handler. The validator caches struct
// metadata, so one instance avoids re-parsing tags per request.
var validate = validator.New()

// DecodeJSON reads the request body into dst. Callers translate any
// failure into a 400; the body is never read twice.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateRequest applies the `validate` struct tags carried by the
// request models: required fields, email format, password length.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}
