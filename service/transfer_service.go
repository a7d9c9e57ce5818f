package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"accounts-api/logger"
	"accounts-api/model"
	"accounts-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransferService executes TED transfers between two accounts. All state
// changes of a transfer (two balance writes, one ledger append) commit in a
// single database transaction guarded by row locks.
type TransferService struct {
	db              *sql.DB
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	calendar        HolidayCalendar

	// nowFunc is swapped in tests; defaults to UTC wall clock.
	nowFunc func() time.Time
}

func NewTransferService(db *sql.DB, accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository, calendar HolidayCalendar) *TransferService {
	return &TransferService{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		calendar:        calendar,
		nowFunc:         func() time.Time { return time.Now().UTC() },
	}
}

// ExecuteTransfer moves amount from the customer's account to the account
// addressed by agency and number. Checks run in a fixed order and the first
// failure wins with no side effects. The balance sufficiency check is
// evaluated on the locked sender row, so two concurrent transfers cannot
// both pass it and overdraw the account.
func (s *TransferService) ExecuteTransfer(ctx context.Context, customerID int, req model.TransferRequest) (result *model.Transaction, err error) {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"agency":      req.Agency,
		"number":      req.Number,
		"amount":      req.Amount.StringFixed(2),
	})
	log.Info("Starting transfer process")

	// An unexpected fault must surface as a failed result, never a crash.
	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", rec).Error("Recovered from unexpected fault during transfer")
			result = nil
			err = fmt.Errorf("unexpected fault during transfer: %v", rec)
		}
	}()

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	sender, err := s.accountRepo.GetAccountByCustomerID(customerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoSenderAccount
		}
		return nil, err
	}

	receiver, err := s.accountRepo.GetAccountByAgencyNumber(req.Agency, req.Number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoReceiverAccount
		}
		return nil, err
	}

	if receiver.CustomerID == customerID {
		return nil, ErrSelfTransfer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock both rows in ascending id order so two opposite-direction
	// transfers cannot deadlock on each other.
	sender, receiver, err = s.lockParticipants(tx, sender.ID, receiver.ID)
	if err != nil {
		return nil, err
	}

	if sender.Balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	now := s.nowFunc()

	holidays, err := s.calendar.GetHolidays(ctx, now.Year())
	if err != nil {
		// Fail closed: an unreachable calendar blocks the transfer.
		log.WithError(err).Warn("Holiday calendar lookup failed, blocking transfer")
		return nil, ErrCalendarUnavailable
	}
	today := now.Format("2006-01-02")
	for _, holiday := range holidays {
		if holiday.Date == today {
			return nil, ErrHolidayBlocked
		}
	}

	if weekday := now.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		return nil, ErrWeekendBlocked
	}

	if err := s.accountRepo.UpdateAccountBalance(tx, receiver.ID, receiver.Balance.Add(req.Amount)); err != nil {
		return nil, fmt.Errorf("could not update receiver balance: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalance(tx, sender.ID, sender.Balance.Sub(req.Amount)); err != nil {
		return nil, fmt.Errorf("could not update sender balance: %w", err)
	}

	transaction := &model.Transaction{
		SenderAccountID:   sender.ID,
		ReceiverAccountID: receiver.ID,
		Amount:            req.Amount,
	}

	if err := s.transactionRepo.CreateTransaction(tx, transaction); err != nil {
		return nil, fmt.Errorf("could not create transaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.Info("Transfer completed successfully")
	return transaction, nil
}

// lockParticipants takes FOR UPDATE locks on both accounts in ascending id
// order and returns the freshly read rows keyed back to their roles.
func (s *TransferService) lockParticipants(tx *sql.Tx, senderID, receiverID int) (sender, receiver *model.Account, err error) {
	firstID, secondID := senderID, receiverID
	if receiverID < senderID {
		firstID, secondID = receiverID, senderID
	}

	locked := make(map[int]*model.Account, 2)
	for _, id := range []int{firstID, secondID} {
		account, lockErr := s.accountRepo.GetAccountForUpdate(tx, id)
		if lockErr != nil {
			if lockErr == sql.ErrNoRows {
				if id == senderID {
					return nil, nil, ErrNoSenderAccount
				}
				return nil, nil, ErrNoReceiverAccount
			}
			return nil, nil, lockErr
		}
		locked[id] = account
	}

	return locked[senderID], locked[receiverID], nil
}
