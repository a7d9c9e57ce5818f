package handler

import (
	"net/http"

	"accounts-api/common"
	"accounts-api/model"
	"accounts-api/service"
)

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	service *service.TransferService
}

func NewTransferHandler(s *service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves an amount from the authenticated customer's account to the account addressed by agency and number. Blocked on weekends, holidays, and when the holiday calendar cannot be consulted.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Details of the transfer"
// @Success      200  {object}  model.CommandResult
// @Failure      400  {object}  model.CommandResult "Business rule violation (insufficient funds, self transfer, holiday/weekend block, ...)"
// @Failure      401  {object}  model.CommandResult "Unauthorized: invalid or missing token"
// @Failure      404  {object}  model.CommandResult "Sender or receiver account not found"
// @Failure      500  {object}  model.CommandResult "Internal server error while processing transfer"
// @Router       /api/transfers [post]
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	customerID, ok := r.Context().Value(CustomerIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "unauthorized", "Invalid customer ID in token", nil)
	}

	_, err := h.service.ExecuteTransfer(r.Context(), customerID, req)
	if err != nil {
		// Map business rule violations to appropriate HTTP status codes.
		switch err {
		case service.ErrNoSenderAccount, service.ErrNoReceiverAccount:
			bizErr := err.(*service.BusinessError)
			return common.NewAppError(http.StatusNotFound, bizErr.Code, bizErr.Message, nil)
		case service.ErrSelfTransfer, service.ErrInsufficientFunds, service.ErrInvalidAmount,
			service.ErrHolidayBlocked, service.ErrWeekendBlocked, service.ErrCalendarUnavailable:
			bizErr := err.(*service.BusinessError)
			return common.NewAppError(http.StatusBadRequest, bizErr.Code, bizErr.Message, nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not process transfer", err)
		}
	}

	writeResult(w, http.StatusOK, "Transfer completed successfully", nil)
	return nil
}
