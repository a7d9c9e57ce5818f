package repository

import (
	"regexp"
	"testing"
	"time"

	"accounts-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRepository_CreateTransaction(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	amount := decimal.RequireFromString("100.00")
	now := time.Now()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_account_id, receiver_account_id, amount) VALUES ($1, $2, $3) RETURNING id, created_at`)).
		WithArgs(1, 2, amount).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
	dbMock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	transaction := &model.Transaction{
		SenderAccountID:   1,
		ReceiverAccountID: 2,
		Amount:            amount,
	}
	err = repo.CreateTransaction(tx, transaction)

	assert.NoError(t, err)
	assert.Equal(t, 7, transaction.ID)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestTransactionRepository_GetTransactionsByAccountID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	newest := time.Now()
	older := newest.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{"id", "sender_account_id", "receiver_account_id", "amount", "created_at"}).
		AddRow(2, 5, 3, "500.00", newest).
		AddRow(1, 3, 5, "100.00", older)

	dbMock.ExpectQuery(`SELECT id, sender_account_id, receiver_account_id, amount, created_at\s+FROM transactions\s+WHERE sender_account_id = \$1 OR receiver_account_id = \$1\s+ORDER BY created_at DESC, id DESC`).
		WithArgs(3).
		WillReturnRows(rows)

	transactions, err := repo.GetTransactionsByAccountID(3)

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, 2, transactions[0].ID)
	assert.True(t, transactions[0].CreatedAt.After(transactions[1].CreatedAt))
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("500.00")))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
