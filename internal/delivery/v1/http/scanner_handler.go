package http

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// ScannerHandler обслуживает распознавание и сохранение чеков расходов.
type ScannerHandler struct {
	scannerUC usecase.ScannerUC
	logger    logger.Logger
}

func NewScannerHandler(scannerUC usecase.ScannerUC, logger logger.Logger) *ScannerHandler {
	return &ScannerHandler{scannerUC: scannerUC, logger: logger}
}

type saveReceiptRequest struct {
	StoreName string               `json:"storeName"`
	Date      string               `json:"date"` // YYYY-MM-DD, пусто — сегодня
	Total     int64                `json:"total"`
	Items     []domain.ReceiptItem `json:"items"`
	ImageData string               `json:"imageData,omitempty"` // base64
	MimeType  string               `json:"mimeType,omitempty"`
}

// scanReceipt
//
//	@Summary		Распознавание чека по изображению
//	@Description	Результат не сохраняется: пользователь правит и подтверждает отдельным запросом
//	@Tags			receipts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Изображение чека"
//	@Success		200		{object}	usecase.ReceiptScan
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse	"Чек не распознан"
//	@Router			/receipts/scan [post]
func (s *ScannerHandler) scanReceipt(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 15 << 20
		maxMemory           = 10 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		WriteError(w, e.ErrNoImage)
		return
	}

	image, err := parseReceiptImage(files[0])
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	scan, err := s.scannerUC.ScanReceipt(r.Context(), &usecase.ScanReceiptReq{
		BusinessID: businessIDFromCtx(r.Context()),
		ImageData:  image.Data,
		MimeType:   image.MimeType,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, scan)
}

// saveReceipt
//
//	@Summary	Сохранение подтверждённого чека
//	@Tags		receipts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		saveReceiptRequest	true	"Чек"
//	@Success	201		{object}	ReceiptResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/receipts [post]
func (s *ScannerHandler) saveReceipt(w http.ResponseWriter, r *http.Request) {
	var body saveReceiptRequest
	if err := decodeJSON(r, &body); err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	req := &usecase.SaveReceiptReq{
		BusinessID: businessIDFromCtx(r.Context()),
		StoreName:  body.StoreName,
		Total:      body.Total,
		Items:      body.Items,
	}

	if body.Date != "" {
		date, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.Date = &date
	}

	if body.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(body.ImageData)
		if err != nil {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.Image = &usecase.ReceiptImage{
			Data:     data,
			MimeType: body.MimeType,
			Size:     int64(len(data)),
		}
	}

	receipt, err := s.scannerUC.SaveReceipt(r.Context(), req)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toReceiptResponse(receipt))
}

// history
//
//	@Summary	Последние сохранённые чеки
//	@Tags		receipts
//	@Produce	json
//	@Success	200	{array}		ReceiptResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/receipts [get]
func (s *ScannerHandler) history(w http.ResponseWriter, r *http.Request) {
	receipts, err := s.scannerUC.History(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toReceiptsResponse(receipts))
}
