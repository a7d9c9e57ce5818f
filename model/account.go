package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customer_id"`
	Agency     int16           `json:"agency"`
	Number     int32           `json:"number"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
