// handler/main_test.go
package handler

import (
	"database/sql"
	"os"
	"testing"

	"accounts-api/config"
	"accounts-api/logger"
	"accounts-api/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// TestMain sets up logging and test configuration for the handler package.
func TestMain(m *testing.M) {
	logger.Init()
	config.AppConfig.JWT.SecretKey = "test-secret"
	config.AppConfig.JWT.AccessTTLMinutes = 60
	config.AppConfig.JWT.RefreshTTLHours = 168
	os.Exit(m.Run())
}

// mockAccountRepo implements repository.IAccountRepository for handler tests.
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *mockAccountRepo) GetAccountByCustomerID(customerID int) (*model.Account, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByAgencyNumber(agency int16, number int32) (*model.Account, error) {
	args := m.Called(agency, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) ExistsByCustomerID(customerID int) (bool, error) {
	args := m.Called(customerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) ExistsByAgencyNumber(agency int16, number int32) (bool, error) {
	args := m.Called(agency, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error) {
	args := m.Called(tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance decimal.Decimal) error {
	args := m.Called(tx, accountID, newBalance)
	return args.Error(0)
}

// mockTransactionRepo implements repository.ITransactionRepository.
type mockTransactionRepo struct{ mock.Mock }

func (m *mockTransactionRepo) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	args := m.Called(tx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepo) GetTransactionsByAccountID(accountID int) ([]*model.Transaction, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}
