package repository

import (
	"database/sql"

	"accounts-api/logger"
	"accounts-api/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountByCustomerID(customerID int) (*model.Account, error)
	GetAccountByAgencyNumber(agency int16, number int32) (*model.Account, error)
	ExistsByCustomerID(customerID int) (bool, error)
	ExistsByAgencyNumber(agency int16, number int32) (bool, error)
	GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error)
	UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error
}

// AccountRepository implements IAccountRepository on top of postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount adds a new account to the database.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id": account.CustomerID,
		"agency":      account.Agency,
		"number":      account.Number,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (customer_id, agency, number, balance) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, account.CustomerID, account.Agency, account.Number, account.Balance).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetAccountByCustomerID retrieves the single account owned by a customer.
func (r *AccountRepository) GetAccountByCustomerID(customerID int) (*model.Account, error) {
	log := logger.Log.WithField("customer_id", customerID)
	log.Info("Executing query to get account by customer ID")

	account := &model.Account{}
	query := `SELECT id, customer_id, agency, number, balance, created_at, updated_at FROM accounts WHERE customer_id = $1`
	err := r.DB.QueryRow(query, customerID).
		Scan(&account.ID, &account.CustomerID, &account.Agency, &account.Number, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get account by customer ID query")
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByAgencyNumber retrieves an account by its agency and number pair.
func (r *AccountRepository) GetAccountByAgencyNumber(agency int16, number int32) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"agency": agency,
		"number": number,
	})
	log.Info("Executing query to get account by agency and number")

	account := &model.Account{}
	query := `SELECT id, customer_id, agency, number, balance, created_at, updated_at FROM accounts WHERE agency = $1 AND number = $2`
	err := r.DB.QueryRow(query, agency, number).
		Scan(&account.ID, &account.CustomerID, &account.Agency, &account.Number, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get account by agency and number query")
		}
		return nil, err
	}
	return account, nil
}

// ExistsByCustomerID reports whether the customer already owns an account.
func (r *AccountRepository) ExistsByCustomerID(customerID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE customer_id = $1)`
	err := r.DB.QueryRow(query, customerID).Scan(&exists)
	if err != nil {
		logger.Log.WithField("customer_id", customerID).WithError(err).Error("Failed to check account existence by customer")
		return false, err
	}
	return exists, nil
}

// ExistsByAgencyNumber reports whether the (agency, number) pair is taken.
func (r *AccountRepository) ExistsByAgencyNumber(agency int16, number int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE agency = $1 AND number = $2)`
	err := r.DB.QueryRow(query, agency, number).Scan(&exists)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"agency": agency,
			"number": number,
		}).WithError(err).Error("Failed to check account existence by agency and number")
		return false, err
	}
	return exists, nil
}

// GetAccountForUpdate reads an account inside tx holding a row lock until
// the transaction ends.
func (r *AccountRepository) GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT id, customer_id, agency, number, balance FROM accounts WHERE id = $1 FOR UPDATE`
	err := tx.QueryRow(query, accountID).
		Scan(&account.ID, &account.CustomerID, &account.Agency, &account.Number, &account.Balance)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccountBalance writes a new balance for the account inside tx.
// Validation is the caller's responsibility.
func (r *AccountRepository) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": newBalance.StringFixed(2),
	})
	log.Info("Executing query to update account balance")

	query := `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`
	_, err := tx.Exec(query, newBalance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}
	return nil
}
