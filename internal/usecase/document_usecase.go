package usecase

import (
	"context"

	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

const documentOrdersLimit = 30

// DocumentUseCase генерирует деловые документы по свежим данным бизнеса.
type DocumentUseCase struct {
	businessRepo BusinessRepository
	orderRepo    OrderRepository
	aiService    AIService
	logger       logger.Logger
}

func NewDocumentUC(
	businessRepo BusinessRepository,
	orderRepo OrderRepository,
	aiService AIService,
	logger logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		businessRepo: businessRepo,
		orderRepo:    orderRepo,
		aiService:    aiService,
		logger:       logger,
	}
}

// GenerateDocument возвращает markdown-текст документа выбранного типа:
// счёт по последней продаже, отчёт о продажах либо сводку о состоянии бизнеса.
func (d *DocumentUseCase) GenerateDocument(ctx context.Context, req *GenerateDocumentReq) (string, error) {
	const op = "DocumentUseCase.GenerateDocument"

	switch req.Type {
	case DocumentInvoice, DocumentSalesReport, DocumentSummary:
	default:
		return "", e.Wrap(op, e.ErrUnknownDocumentType)
	}

	business, err := d.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	orders, err := d.orderRepo.Recent(ctx, req.BusinessID, documentOrdersLimit)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	document, err := d.aiService.GenerateText(ctx, buildDocumentPrompt(req.Type, business, orders))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return document, nil
}
