package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts-api/model"
	"accounts-api/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// unreachableCalendar simulates the holiday provider being down.
type unreachableCalendar struct{}

func (unreachableCalendar) GetHolidays(ctx context.Context, year int) ([]model.Holiday, error) {
	return nil, errors.New("provider unreachable")
}

func newTransferHandler(t *testing.T, accountRepo *mockAccountRepo, calendar service.HolidayCalendar) (*TransferHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	svc := service.NewTransferService(db, accountRepo, new(mockTransactionRepo), calendar)
	return NewTransferHandler(svc), dbMock, func() { db.Close() }
}

func TestTransferHandler_CreateTransfer(t *testing.T) {
	body := `{"agency":2,"number":20,"amount":500.00}`

	t.Run("sender has no account", func(t *testing.T) {
		accountRepo := new(mockAccountRepo)
		accountRepo.On("GetAccountByCustomerID", 1).Return(nil, sql.ErrNoRows).Once()

		h, _, closeDB := newTransferHandler(t, accountRepo, unreachableCalendar{})
		defer closeDB()

		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, authedRequest("POST", "/api/transfers", body, 1))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var result model.CommandResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "no_sender_account", result.Code)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		sender := &model.Account{ID: 1, CustomerID: 1, Agency: 1, Number: 10, Balance: decimal.RequireFromString("100.00")}
		receiver := &model.Account{ID: 2, CustomerID: 2, Agency: 2, Number: 20, Balance: decimal.RequireFromString("10000.00")}

		accountRepo := new(mockAccountRepo)
		accountRepo.On("GetAccountByCustomerID", 1).Return(sender, nil).Once()
		accountRepo.On("GetAccountByAgencyNumber", int16(2), int32(20)).Return(receiver, nil).Once()
		accountRepo.On("GetAccountForUpdate", mock.AnythingOfType("*sql.Tx"), 1).Return(sender, nil).Once()
		accountRepo.On("GetAccountForUpdate", mock.AnythingOfType("*sql.Tx"), 2).Return(receiver, nil).Once()

		h, dbMock, closeDB := newTransferHandler(t, accountRepo, unreachableCalendar{})
		defer closeDB()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, authedRequest("POST", "/api/transfers", body, 1))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var result model.CommandResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Equal(t, "insufficient_funds", result.Code)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("calendar unavailable blocks the transfer", func(t *testing.T) {
		sender := &model.Account{ID: 1, CustomerID: 1, Agency: 1, Number: 10, Balance: decimal.RequireFromString("10000.00")}
		receiver := &model.Account{ID: 2, CustomerID: 2, Agency: 2, Number: 20, Balance: decimal.RequireFromString("10000.00")}

		accountRepo := new(mockAccountRepo)
		accountRepo.On("GetAccountByCustomerID", 1).Return(sender, nil).Once()
		accountRepo.On("GetAccountByAgencyNumber", int16(2), int32(20)).Return(receiver, nil).Once()
		accountRepo.On("GetAccountForUpdate", mock.AnythingOfType("*sql.Tx"), 1).Return(sender, nil).Once()
		accountRepo.On("GetAccountForUpdate", mock.AnythingOfType("*sql.Tx"), 2).Return(receiver, nil).Once()

		h, dbMock, closeDB := newTransferHandler(t, accountRepo, unreachableCalendar{})
		defer closeDB()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, authedRequest("POST", "/api/transfers", body, 1))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var result model.CommandResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "calendar_unavailable", result.Code)
	})

	t.Run("self transfer", func(t *testing.T) {
		sender := &model.Account{ID: 1, CustomerID: 1, Agency: 2, Number: 20, Balance: decimal.RequireFromString("10000.00")}

		accountRepo := new(mockAccountRepo)
		accountRepo.On("GetAccountByCustomerID", 1).Return(sender, nil).Once()
		accountRepo.On("GetAccountByAgencyNumber", int16(2), int32(20)).Return(sender, nil).Once()

		h, _, closeDB := newTransferHandler(t, accountRepo, unreachableCalendar{})
		defer closeDB()

		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, authedRequest("POST", "/api/transfers", body, 1))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var result model.CommandResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "self_transfer", result.Code)
	})

	t.Run("malformed payload", func(t *testing.T) {
		h, _, closeDB := newTransferHandler(t, new(mockAccountRepo), unreachableCalendar{})
		defer closeDB()

		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, authedRequest("POST", "/api/transfers", `{"agency":0}`, 1))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var result model.CommandResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "validation_error", result.Code)
	})

	t.Run("missing customer id in context", func(t *testing.T) {
		h, _, closeDB := newTransferHandler(t, new(mockAccountRepo), unreachableCalendar{})
		defer closeDB()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/transfers", strings.NewReader(body))
		ErrorHandlingMiddleware(h.CreateTransfer).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
