package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage attaches a client-facing reason, e.g. which field failed validation.
func (e *BaseError) WrapMessage(message string) error {
	return errors.WithStack(e.WithDetails(message))
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, including copies made by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"This username is already taken",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusForbidden,
		"USER_INACTIVE",
		"This account has been deactivated",
		"",
	)

	ErrCannotSuspendSelf = NewBaseError(
		http.StatusConflict,
		"CANNOT_SUSPEND_SELF",
		"Administrators cannot deactivate their own account",
		"",
	)

	// Authentication-related errors
	ErrAuthNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"Authentication method not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is not strong enough",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"Password contains forbidden words or patterns",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Current password is incorrect",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	// Verification and KYC errors
	ErrKYCDocumentsRequired = NewBaseError(
		http.StatusBadRequest,
		"KYC_DOCUMENTS_REQUIRED",
		"Both ID document and selfie are required",
		"",
	)

	ErrKYCNotFound = NewBaseError(
		http.StatusNotFound,
		"KYC_NOT_FOUND",
		"KYC submission not found",
		"",
	)

	ErrKYCAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"KYC_ALREADY_VERIFIED",
		"KYC has already been verified",
		"",
	)

	ErrVerificationTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_TOKEN_INVALID",
		"Invalid or expired verification token",
		"",
	)

	ErrUnderage = NewBaseError(
		http.StatusForbidden,
		"UNDERAGE",
		"You do not meet the minimum age requirement",
		"",
	)

	ErrAgeVerificationRequired = NewBaseError(
		http.StatusForbidden,
		"AGE_VERIFICATION_REQUIRED",
		"Age verification is required to access this content",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductInactive = NewBaseError(
		http.StatusConflict,
		"PRODUCT_INACTIVE",
		"Product is not available",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrInvalidPriceRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE_RANGE",
		"Minimum price cannot exceed maximum price",
		"",
	)

	// Cart and order errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough stock for one or more products",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CANCELLABLE",
		"Only pending orders can be cancelled",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code content is invalid",
		"",
	)

	// Community errors
	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_NOT_FOUND",
		"Community room not found",
		"",
	)

	ErrRoomAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ROOM_ACCESS_DENIED",
		"You do not have access to this room",
		"",
	)

	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrParentMessageMismatch = NewBaseError(
		http.StatusBadRequest,
		"PARENT_MESSAGE_MISMATCH",
		"Reply target belongs to a different post",
		"",
	)

	ErrCannotMessageSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_MESSAGE_SELF",
		"You cannot send a message to yourself",
		"",
	)

	// Advertisement errors
	ErrAdvertisementNotFound = NewBaseError(
		http.StatusNotFound,
		"ADVERTISEMENT_NOT_FOUND",
		"Advertisement not found",
		"",
	)

	ErrAdSlotNotFound = NewBaseError(
		http.StatusNotFound,
		"AD_SLOT_NOT_FOUND",
		"Advertisement slot not found",
		"",
	)

	ErrInvalidAdSchedule = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AD_SCHEDULE",
		"Advertisement end date must not be before its start date",
		"",
	)

	ErrAdExpired = NewBaseError(
		http.StatusConflict,
		"AD_EXPIRED",
		"Advertisement end date has already passed",
		"",
	)

	ErrAdNotServing = NewBaseError(
		http.StatusConflict,
		"AD_NOT_SERVING",
		"Advertisement is not currently running",
		"",
	)

	// Admin and moderation errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	ErrReportAlreadyResolved = NewBaseError(
		http.StatusConflict,
		"REPORT_ALREADY_RESOLVED",
		"Report has already been resolved",
		"",
	)

	ErrUnsupportedModerationAction = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MODERATION_ACTION",
		"Action is not supported for this report type",
		"",
	)

	ErrSettingNotFound = NewBaseError(
		http.StatusNotFound,
		"SETTING_NOT_FOUND",
		"System setting not found",
		"",
	)

	ErrExportUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"EXPORT_UNAVAILABLE",
		"Report export is not configured",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Refresh token-related errors
	ErrRefreshTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"REFRESH_TOKEN_NOT_FOUND",
		"Refresh token not found",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token has expired",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_EXCEEDED",
		"Too many requests, please try again later",
		"",
	)

	ErrSuspiciousInput = NewBaseError(
		http.StatusBadRequest,
		"SUSPICIOUS_INPUT",
		"Request contains disallowed content",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
