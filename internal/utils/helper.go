package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body cannot be empty")

// DecodeJSONBody reads exactly one JSON value from the body into dest. The
// returned error text is safe to show to the client.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := dec.Decode(dest)
	if err == nil {
		if dec.More() {
			return errors.New("request body must contain a single JSON object")
		}
		return nil
	}

	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		tooLargeErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("invalid JSON format at position %d", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("invalid JSON format: unexpected end of body")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("field %s must be a %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &tooLargeErr):
		return fmt.Errorf("request body exceeds %d bytes", tooLargeErr.Limit)
	default:
		return fmt.Errorf("invalid JSON format: %w", err)
	}
}

// ValidateStruct returns validator.ValidationErrors unwrapped so callers can
// render one message per field.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	return fmt.Errorf("unexpected validation error: %w", err)
}
