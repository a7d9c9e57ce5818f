package model

// CommandResult is the uniform response envelope for every endpoint.
// Code carries a machine-readable error kind on failures; Message stays
// human-readable. Errors lists field-level validation messages when the
// payload itself was malformed.
type CommandResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
