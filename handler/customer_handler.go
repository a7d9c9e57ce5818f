package handler

import (
	"net/http"

	"accounts-api/common"
	"accounts-api/model"
	"accounts-api/service"
)

// CustomerHandler holds dependencies for registration and authentication.
type CustomerHandler struct {
	authService *service.AuthService
}

func NewCustomerHandler(authService *service.AuthService) *CustomerHandler {
	return &CustomerHandler{authService: authService}
}

// Register godoc
// @Summary      Register a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body model.RegisterRequest true "Customer registration data"
// @Success      201  {object}  model.CommandResult
// @Failure      400  {object}  model.CommandResult
// @Router       /register [post]
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	customer, err := h.authService.Register(req)
	if err != nil {
		switch err {
		case service.ErrEmailTaken:
			return common.NewAppError(http.StatusConflict, service.ErrEmailTaken.Code, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not register customer", err)
		}
	}

	writeResult(w, http.StatusCreated, "Customer registered successfully", customer)
	return nil
}

// Login godoc
// @Summary      Authenticate a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  model.CommandResult
// @Failure      401  {object}  model.CommandResult
// @Router       /login [post]
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	accessToken, refreshToken, err := h.authService.Login(req)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return common.NewAppError(http.StatusUnauthorized, service.ErrInvalidCredentials.Code, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not log in", err)
		}
	}

	writeResult(w, http.StatusOK, "Login successful", map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
	return nil
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshRequest true "Refresh token"
// @Success      200  {object}  model.CommandResult
// @Failure      401  {object}  model.CommandResult
// @Router       /refresh [post]
func (h *CustomerHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	accessToken, refreshToken, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		switch err {
		case service.ErrInvalidRefreshToken:
			return common.NewAppError(http.StatusUnauthorized, service.ErrInvalidRefreshToken.Code, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "internal_error", "Could not refresh session", err)
		}
	}

	writeResult(w, http.StatusOK, "Session refreshed", map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
	return nil
}
