package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки
	ErrEmptyVector          = fmt.Errorf("empty embedding vector")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrMissingFields     = fmt.Errorf("missing required fields")
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data")
	ErrInvalidPrice      = fmt.Errorf("invalid price")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrFileTooLarge      = fmt.Errorf("file too large")

	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrNegativeStock       = fmt.Errorf("stock must be non-negative")

	ErrNoItems              = fmt.Errorf("order must contain at least one item")
	ErrInvalidQuantity      = fmt.Errorf("item quantity must be positive")
	ErrItemNameRequired     = fmt.Errorf("item product name is required")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrEmptyMessage         = fmt.Errorf("message content is empty")
	ErrUnknownDocumentType  = fmt.Errorf("unknown document type")
	ErrEmptyQuery           = fmt.Errorf("search query is empty")
	ErrPasswordTooShort     = fmt.Errorf("password must be at least 8 characters")

	// 401 Unauthorized
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrSessionNotFound  = fmt.Errorf("chat session not found")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrBusinessNotFound = fmt.Errorf("business not found")

	// 409 Conflict
	ErrEmailTaken        = fmt.Errorf("email already registered")
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrOrderExists       = fmt.Errorf("order already processed")

	// 422 Unprocessable Entity
	ErrUnparsableReceipt = fmt.Errorf("failed to parse receipt")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
