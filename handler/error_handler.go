package handler

import (
	"encoding/json"
	"net/http"

	"accounts-api/common"
	"accounts-api/model"
)

// ErrorHandlingMiddleware adapts handlers that return *common.AppError into
// plain http.HandlerFunc, rendering the error envelope on failure.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// writeResult renders the uniform success envelope.
func writeResult(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.CommandResult{
		Success: true,
		Message: message,
		Data:    data,
	})
}
