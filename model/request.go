// file: model/request.go

package model

import "github.com/shopspring/decimal"

// RegisterRequest defines the payload for creating a new customer.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for customer authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest carries the opaque refresh token issued at login.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateAccountRequest defines the payload for opening an account.
// The balance floor (10000.00) is a business invariant enforced by the
// account service; the tags only guard shape and range.
type CreateAccountRequest struct {
	Agency  int16           `json:"agency" validate:"required,gte=1,lte=99"`
	Number  int32           `json:"number" validate:"required,gte=1,lte=99"`
	Balance decimal.Decimal `json:"balance" validate:"required"`
}

// TransferRequest defines the payload for a TED transfer. The sender is
// always the authenticated customer's account; only the destination is
// addressed by agency and number.
type TransferRequest struct {
	Agency int16           `json:"agency" validate:"required,gte=1,lte=99"`
	Number int32           `json:"number" validate:"required,gte=1,lte=99"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}
