package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an append-only ledger entry recording one completed
// transfer. Rows are never updated or deleted.
type Transaction struct {
	ID                int             `json:"id"`
	SenderAccountID   int             `json:"sender_account_id"`
	ReceiverAccountID int             `json:"receiver_account_id"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"created_at"`
}
