package handler

import (
	"net/http"

	"accounts-api/common"
	"accounts-api/logger"
	"accounts-api/model"
	"accounts-api/service"

	"github.com/sirupsen/logrus"
)

// AccountHandler holds dependencies for account creation and statements.
type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Open a new account
// @Description  Opens the single account the authenticated customer may hold.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.CreateAccountRequest true "Account opening data"
// @Success      201  {object}  model.CommandResult
// @Failure      400  {object}  model.CommandResult "Validation or business rule failure"
// @Failure      401  {object}  model.CommandResult
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	customerID, ok := r.Context().Value(CustomerIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "unauthorized", "Invalid customer ID in token", nil)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"agency":      req.Agency,
		"number":      req.Number,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateAccount(customerID, req)
	if err != nil {
		switch err {
		case service.ErrDuplicateOwnerAccount, service.ErrDuplicateAgencyNumber, service.ErrMinimumOpeningBalance:
			bizErr := err.(*service.BusinessError)
			return common.NewAppError(http.StatusBadRequest, bizErr.Code, bizErr.Message, nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not create account", err)
		}
	}

	writeResult(w, http.StatusCreated, "Account created successfully", account)
	return nil
}

// GetStatement godoc
// @Summary      Account statement
// @Description  Returns the authenticated customer's account with its ledger entries, newest first.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.CommandResult{data=model.StatementResponse}
// @Failure      401  {object}  model.CommandResult
// @Failure      404  {object}  model.CommandResult "Customer has no account"
// @Router       /api/accounts/statement [get]
func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) *common.AppError {
	customerID, ok := r.Context().Value(CustomerIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "unauthorized", "Invalid customer ID in token", nil)
	}

	statement, err := h.service.GetStatement(customerID)
	if err != nil {
		switch err {
		case service.ErrAccountNotFound:
			return common.NewAppError(http.StatusNotFound, service.ErrAccountNotFound.Code, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not retrieve statement", err)
		}
	}

	writeResult(w, http.StatusOK, "Statement retrieved successfully", statement)
	return nil
}
