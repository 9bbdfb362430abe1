package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationPrecision     ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountInactive      ErrorCode = "ACCOUNT_002"
	AccountInvalidNumber ErrorCode = "ACCOUNT_003"
	AccountInvalidName   ErrorCode = "ACCOUNT_004"
	AccountAlreadyExists ErrorCode = "ACCOUNT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_001"
	TransactionInsufficientFunds ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed  ErrorCode = "TRANSACTION_003"
	TransactionInvalidType       ErrorCode = "TRANSACTION_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferInsufficientFunds ErrorCode = "TRANSFER_002"
	TransferInvalidAmount     ErrorCode = "TRANSFER_003"
)

// Interest error codes (INTEREST_*)
const (
	InterestBelowMinimum  ErrorCode = "INTEREST_001"
	InterestNothingToPay  ErrorCode = "INTEREST_002"
	InterestRunInProgress ErrorCode = "INTEREST_003"
	InterestInvalidConfig ErrorCode = "INTEREST_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemStoreTimeout       ErrorCode = "SYSTEM_007"
	SystemConcurrentUpdate   ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationPrecision:     "Amounts may carry at most two decimal places",

	// Account errors
	AccountNotFound:      "Account not found",
	AccountInactive:      "Account is closed or inactive",
	AccountInvalidNumber: "Invalid account number",
	AccountInvalidName:   "Invalid account name",
	AccountAlreadyExists: "An account with this ID already exists",

	// Transaction errors
	TransactionInvalidAmount:     "Invalid transaction amount",
	TransactionInsufficientFunds: "Insufficient account balance for this transaction",
	TransactionValidationFailed:  "Transaction validation failed",
	TransactionInvalidType:       "Invalid transaction type",

	// Transfer errors
	TransferSameAccount:       "Cannot transfer to the same account",
	TransferInsufficientFunds: "Source account has insufficient balance for this transfer",
	TransferInvalidAmount:     "Invalid transfer amount",

	// Interest errors
	InterestBelowMinimum:  "Account balance is below the minimum for interest",
	InterestNothingToPay:  "No interest has accrued yet",
	InterestRunInProgress: "An interest run is already in progress",
	InterestInvalidConfig: "Invalid interest configuration",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemStoreTimeout:       "The store did not respond in time",
	SystemConcurrentUpdate:   "The account was modified concurrently. Please retry",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
