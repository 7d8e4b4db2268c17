package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет доменные ошибки HTTP-статусам.
// Неизвестные ошибки не протекают наружу: клиент видит 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	for _, sentinel := range []error{
		e.ErrStatusBadRequest,
		e.ErrExpectedMultipart,
		e.ErrMissingFields,
		e.ErrInvalidPrice,
		e.ErrPricePrecision,
		e.ErrFileTooLarge,
		e.ErrProductNameRequired,
		e.ErrPriceMustBePositive,
		e.ErrNegativeStock,
		e.ErrNoItems,
		e.ErrInvalidQuantity,
		e.ErrItemNameRequired,
		e.ErrNoImage,
		e.ErrUnsupportedMediaType,
		e.ErrEmptyMessage,
		e.ErrUnknownDocumentType,
		e.ErrEmptyQuery,
		e.ErrPasswordTooShort,
	} {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, sentinel.Error()
		}
	}

	switch {
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusNotFound, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrBusinessNotFound):
		return http.StatusNotFound, e.ErrBusinessNotFound.Error()
	case errors.Is(err, e.ErrEmailTaken):
		return http.StatusConflict, e.ErrEmailTaken.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, e.ErrInsufficientStock.Error()
	case errors.Is(err, e.ErrOrderExists):
		return http.StatusConflict, e.ErrOrderExists.Error()
	case errors.Is(err, e.ErrUnparsableReceipt):
		return http.StatusUnprocessableEntity, e.ErrUnparsableReceipt.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.ErrStatusBadRequest
	}
	return nil
}

// parsePrice переводит строку вида "15000" или "15000.00" в целые рупии.
// Дробные рупии отклоняются: у рупии нет копеек.
func parsePrice(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Верхняя граница 1 триллион рупий
	maxPrice := decimal.NewFromInt(1_000_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.ErrExpectedMultipart
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseReceiptImage читает изображение чека из multipart-формы.
func parseReceiptImage(fh *multipart.FileHeader) (*usecase.ReceiptImage, error) {
	const maxFileSize = 10 << 20

	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return &usecase.ReceiptImage{
		Data:     data,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Name:     fh.Filename,
	}, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
