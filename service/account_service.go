// file: service/account_service.go

package service

import (
	"database/sql"

	"accounts-api/logger"
	"accounts-api/model"
	"accounts-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// minimumOpeningBalance is the smallest balance an account may open with.
var minimumOpeningBalance = decimal.NewFromInt(10000)

// AccountService owns account creation rules and the statement view.
type AccountService struct {
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
}

func NewAccountService(accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// CreateAccount opens the single account a customer may hold. Both
// uniqueness rules are checked before anything is persisted.
func (s *AccountService) CreateAccount(customerID int, req model.CreateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"agency":      req.Agency,
		"number":      req.Number,
	})
	log.Info("Starting account creation")

	if req.Balance.LessThan(minimumOpeningBalance) {
		return nil, ErrMinimumOpeningBalance
	}

	hasAccount, err := s.accountRepo.ExistsByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	if hasAccount {
		return nil, ErrDuplicateOwnerAccount
	}

	taken, err := s.accountRepo.ExistsByAgencyNumber(req.Agency, req.Number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateAgencyNumber
	}

	account := &model.Account{
		CustomerID: customerID,
		Agency:     req.Agency,
		Number:     req.Number,
		Balance:    req.Balance,
	}

	if err := s.accountRepo.CreateAccount(account); err != nil {
		return nil, err
	}

	log.WithField("account_id", account.ID).Info("Account created successfully")
	return account, nil
}

// GetStatement builds the directional ledger view for the customer's
// account, newest entry first. Read-only: calling it twice with no
// intervening transfer yields identical output.
func (s *AccountService) GetStatement(customerID int) (*model.StatementResponse, error) {
	account, err := s.accountRepo.GetAccountByCustomerID(customerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	transactions, err := s.transactionRepo.GetTransactionsByAccountID(account.ID)
	if err != nil {
		return nil, err
	}

	statement := &model.StatementResponse{
		ID:           account.ID,
		Agency:       account.Agency,
		Number:       account.Number,
		Balance:      account.Balance,
		Transactions: make([]model.StatementEntry, 0, len(transactions)),
	}

	for _, t := range transactions {
		direction := model.DirectionOutgoing
		if t.ReceiverAccountID == account.ID {
			direction = model.DirectionIncoming
		}
		statement.Transactions = append(statement.Transactions, model.StatementEntry{
			BalanceInOut: direction,
			Amount:       t.Amount,
			CreatedAt:    t.CreatedAt,
		})
	}

	return statement, nil
}
