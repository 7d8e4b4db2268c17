package usecase

import (
	"context"
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

const (
	maxReceiptImageSize = 10 << 20 // 10 MiB
	receiptHistoryLimit = 50
)

// Поддерживаемые форматы изображений чеков
var supportedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ScannerUseCase реализует распознавание чеков расходов: vision-скан
// и сохранение подтверждённого результата вместе с изображением.
type ScannerUseCase struct {
	receiptRepo ReceiptRepository
	aiService   AIService
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewScannerUC(
	receiptRepo ReceiptRepository,
	aiService AIService,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ScannerUseCase {
	return &ScannerUseCase{
		receiptRepo: receiptRepo,
		aiService:   aiService,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ScanReceipt распознаёт чек по изображению. Результат не сохраняется:
// пользователь сперва правит распознанное, затем подтверждает сохранение.
func (s *ScannerUseCase) ScanReceipt(ctx context.Context, req *ScanReceiptReq) (*ReceiptScan, error) {
	const op = "ScannerUseCase.ScanReceipt"

	if len(req.ImageData) == 0 {
		return nil, e.Wrap(op, e.ErrNoImage)
	}
	if int64(len(req.ImageData)) > maxReceiptImageSize {
		return nil, e.Wrap(op, e.ErrFileTooLarge)
	}
	if _, ok := supportedImageTypes[req.MimeType]; !ok {
		return nil, e.Wrap(op, e.ErrUnsupportedMediaType)
	}

	scan, err := s.aiService.ScanReceipt(ctx, req.ImageData, req.MimeType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return scan, nil
}

// SaveReceipt сохраняет подтверждённый чек. Изображение, если оно передано,
// сперва загружается в хранилище; при ошибке записи в бд загруженный
// объект зачищается в фоне.
func (s *ScannerUseCase) SaveReceipt(ctx context.Context, req *SaveReceiptReq) (*domain.Receipt, error) {
	const op = "ScannerUseCase.SaveReceipt"

	var imageKey string
	if req.Image != nil {
		if int64(len(req.Image.Data)) > maxReceiptImageSize {
			return nil, e.Wrap(op, e.ErrFileTooLarge)
		}
		if _, ok := supportedImageTypes[req.Image.MimeType]; !ok {
			return nil, e.Wrap(op, e.ErrUnsupportedMediaType)
		}

		key, err := s.imagesInfra.UploadReceiptImage(ctx, NewUploadReceiptImageReq(req.BusinessID, req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = key
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	receipt, err := s.receiptRepo.Create(ctx, domain.NewReceipt(req.BusinessID, req.StoreName, date, req.Total, req.Items, imageKey))
	if err != nil {
		if imageKey != "" {
			s.imagesInfra.CleanupImages([]string{imageKey})
		}
		return nil, e.Wrap(op, err)
	}

	return receipt, nil
}

// History возвращает последние сохранённые чеки бизнеса.
func (s *ScannerUseCase) History(ctx context.Context, businessID string) ([]domain.Receipt, error) {
	const op = "ScannerUseCase.History"

	receipts, err := s.receiptRepo.ListRecent(ctx, businessID, receiptHistoryLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return receipts, nil
}
