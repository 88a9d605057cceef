package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope for every JSON body the API writes.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func write(w http.ResponseWriter, statusCode int, body APIResponse) {
	if err := WriteJson(w, statusCode, body); err != nil {
		slog.Error("Failed to write response", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error renders an AppError with its own status; anything else is a 500
// with a generic message.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		write(w, http.StatusInternalServerError, APIResponse{Error: &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		}})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	write(w, appErr.StatusCode, APIResponse{Error: body})
}

// fieldMessages holds one format per validator tag. Formats with two verbs
// take the tag parameter as their second argument.
var fieldMessages = map[string]string{
	"required": "Field %s is required",
	"email":    "Field %s must be a valid email address",
	"numeric":  "Field %s must contain digits only",
	"url":      "Field %s must be a valid URL",
	"uuid":     "Field %s must be a valid id",
	"min":      "Field %s must be at least %s",
	"max":      "Field %s must be at most %s",
	"len":      "Field %s must be exactly %s characters",
	"gt":       "Field %s must be greater than %s",
	"gte":      "Field %s must be %s or more",
	"lte":      "Field %s must be %s or less",
	"oneof":    "Field %s must be one of [%s]",
}

func fieldMessage(fe validator.FieldError) string {
	format, ok := fieldMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}

	if fe.Param() == "" {
		return fmt.Sprintf(format, fe.Field())
	}

	return fmt.Sprintf(format, fe.Field(), fe.Param())
}

// ValidationError writes a 400 listing one message per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	write(w, http.StatusBadRequest, APIResponse{Error: &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	}})
}
