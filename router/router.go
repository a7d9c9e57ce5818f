package router

import (
	"net/http"

	"accounts-api/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(customerHandler *handler.CustomerHandler, accountHandler *handler.AccountHandler, transferHandler *handler.TransferHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(customerHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(customerHandler.Login))
	mux.Handle("POST /refresh", handler.ErrorHandlingMiddleware(customerHandler.Refresh))

	mux.Handle("POST /api/accounts", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(accountHandler.CreateAccount)))
	mux.Handle("GET /api/accounts/statement", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(accountHandler.GetStatement)))
	mux.Handle("POST /api/transfers", handler.AuthMiddleware(handler.ErrorHandlingMiddleware(transferHandler.CreateTransfer)))

	return mux
}
