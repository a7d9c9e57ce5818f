package service

// BusinessError is a business rule violation. Code is the stable
// machine-readable kind surfaced to clients; Message is the human text.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func newBusinessError(code, message string) *BusinessError {
	return &BusinessError{Code: code, Message: message}
}

var (
	// Account registry rules.
	ErrDuplicateOwnerAccount = newBusinessError("duplicate_owner_account", "customer already has an active account")
	ErrDuplicateAgencyNumber = newBusinessError("duplicate_agency_number", "an account with this agency and number already exists")
	ErrMinimumOpeningBalance = newBusinessError("minimum_opening_balance", "minimum opening balance is 10000.00")
	ErrAccountNotFound       = newBusinessError("account_not_found", "account not found")

	// Transfer rules, in validation order.
	ErrNoSenderAccount     = newBusinessError("no_sender_account", "you need an account to make a transfer")
	ErrNoReceiverAccount   = newBusinessError("no_receiver_account", "destination account does not exist")
	ErrSelfTransfer        = newBusinessError("self_transfer", "cannot transfer to your own account")
	ErrInsufficientFunds   = newBusinessError("insufficient_funds", "insufficient funds to complete the transfer")
	ErrHolidayBlocked      = newBusinessError("holiday_blocked", "transfers are not allowed on holidays")
	ErrWeekendBlocked      = newBusinessError("weekend_blocked", "transfers are not allowed on weekends")
	ErrInvalidAmount       = newBusinessError("invalid_amount", "transfer amount must be greater than zero")
	// Fail-closed outcome when the holiday feed cannot be consulted: the
	// transfer is blocked rather than allowed through unchecked.
	ErrCalendarUnavailable = newBusinessError("calendar_unavailable", "holiday calendar is unavailable, transfer blocked")

	// Authentication rules.
	ErrEmailTaken          = newBusinessError("email_taken", "a customer with this email already exists")
	ErrInvalidCredentials  = newBusinessError("invalid_credentials", "invalid email or password")
	ErrInvalidRefreshToken = newBusinessError("invalid_refresh_token", "refresh token is invalid or expired")
)
