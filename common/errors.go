package common

import (
	"encoding/json"
	"net/http"

	"accounts-api/logger"
	"accounts-api/model"

	"github.com/sirupsen/logrus"
)

// AppError is the HTTP-facing error envelope. Status drives the response
// code, Code is the machine-readable error kind, and Err (never serialized)
// keeps the underlying cause for logging.
type AppError struct {
	Status  int      `json:"-"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"errors,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Status,
			"error_code":     e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(model.CommandResult{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
		Errors:  e.Details,
	})
}
