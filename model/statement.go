package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement direction labels, kept in the bank's reporting language.
const (
	DirectionIncoming = "Entrada"
	DirectionOutgoing = "Saída"
)

// StatementResponse is the per-account directional view derived from the
// ledger, newest entry first.
type StatementResponse struct {
	ID           int              `json:"id"`
	Agency       int16            `json:"agency"`
	Number       int32            `json:"number"`
	Balance      decimal.Decimal  `json:"balance"`
	Transactions []StatementEntry `json:"transactions"`
}

type StatementEntry struct {
	BalanceInOut string          `json:"balance_in_out"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}
