package usecase

import (
	"context"
	"strings"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// BusinessUseCase реализует профиль бизнеса: просмотр и изменение реквизитов.
type BusinessUseCase struct {
	businessRepo BusinessRepository
	logger       logger.Logger
}

func NewBusinessUC(businessRepo BusinessRepository, logger logger.Logger) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// GetBusiness возвращает профиль бизнеса.
func (b *BusinessUseCase) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	const op = "BusinessUseCase.GetBusiness"

	business, err := b.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return business, nil
}

// UpdateBusiness обновляет реквизиты бизнеса.
// Не переданные поля сохраняют прежние значения.
func (b *BusinessUseCase) UpdateBusiness(ctx context.Context, req *UpdateBusinessReq) (*domain.Business, error) {
	const op = "BusinessUseCase.UpdateBusiness"

	business, err := b.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := applyBusinessUpdate(business, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	updated, err := b.businessRepo.Update(ctx, business)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// applyBusinessUpdate переносит переданные поля запроса на сущность.
func applyBusinessUpdate(business *domain.Business, req *UpdateBusinessReq) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return e.ErrMissingFields
		}
		business.Name = name
	}

	if req.Address != nil {
		business.Address = strings.TrimSpace(*req.Address)
	}

	return nil
}
