// Package errors provides the AppError type shared by services and handlers.
// Services return AppErrors so that handlers can render a stable code and a
// safe message without leaking storage details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so a wrapped or re-messaged
// copy still compares equal to its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
)

// Category and reference rule errors.
var (
	ErrCategoryNotFound       = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory      = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrRuleNotFound           = &AppError{Code: "RULE_NOT_FOUND", Message: "Reference rule not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmountCondition = &AppError{Code: "INVALID_AMOUNT_CONDITION", Message: "Invalid amount condition", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound      = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrTransactionAlreadyTagged = &AppError{Code: "TRANSACTION_ALREADY_TAGGED", Message: "Transaction is already tagged to this item", StatusCode: http.StatusConflict}
	ErrTransactionNotTagged     = &AppError{Code: "TRANSACTION_NOT_TAGGED", Message: "Transaction is not tagged to this item", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound       = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrIncomeNotFound       = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income not found", StatusCode: http.StatusNotFound}
	ErrFixedExpenseNotFound = &AppError{Code: "FIXED_EXPENSE_NOT_FOUND", Message: "Fixed expense not found", StatusCode: http.StatusNotFound}
	ErrAllocationNotFound   = &AppError{Code: "ALLOCATION_NOT_FOUND", Message: "Allocation not found", StatusCode: http.StatusNotFound}
	ErrAllocationExists     = &AppError{Code: "ALLOCATION_EXISTS", Message: "An allocation for this category already exists in this budget", StatusCode: http.StatusConflict}
)
