package common

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const CodeValidationError = "validation_error"

var validate = validator.New()

// ValidateAndDecode decodes the request body into payload and runs the
// struct validation tags. On failure it returns an AppError carrying one
// message per failed field.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, CodeValidationError, "Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return NewAppError(http.StatusBadRequest, CodeValidationError, "Invalid request payload", err)
		}

		details := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()))
		}

		appErr := NewAppError(http.StatusBadRequest, CodeValidationError, "Invalid data in request", err)
		appErr.Details = details
		return appErr
	}

	return nil
}
