package repository

import (
	"database/sql"

	"accounts-api/logger"
	"accounts-api/model"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for ledger database
// operations. The ledger is append-only: there is no update or delete path.
type ITransactionRepository interface {
	CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error
	GetTransactionsByAccountID(accountID int) ([]*model.Transaction, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction appends one ledger record inside the caller's
// transaction, so the record commits together with the balance writes.
func (r *TransactionRepository) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"sender_account_id":   transaction.SenderAccountID,
		"receiver_account_id": transaction.ReceiverAccountID,
		"amount":              transaction.Amount.StringFixed(2),
	})
	log.Info("Executing query to create a new transaction record")

	query := `INSERT INTO transactions (sender_account_id, receiver_account_id, amount) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := tx.QueryRow(query, transaction.SenderAccountID, transaction.ReceiverAccountID, transaction.Amount).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// GetTransactionsByAccountID retrieves every ledger record referencing the
// account as sender or receiver, newest first.
func (r *TransactionRepository) GetTransactionsByAccountID(accountID int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get transactions by account ID")

	query := `
		SELECT id, sender_account_id, receiver_account_id, amount, created_at
		FROM transactions
		WHERE sender_account_id = $1 OR receiver_account_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.Query(query, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by account ID")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.SenderAccountID, &t.ReceiverAccountID, &t.Amount, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}
