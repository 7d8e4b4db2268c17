package usecase

import (
	"context"
	"fmt"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// CatalogUseCase реализует CRUD каталога продуктов с кэшем списка
// и векторным индексом для семантического поиска.
type CatalogUseCase struct {
	productRepo   ProductRepository
	embeddingRepo EmbeddingRepository
	cacheRepo     CacheRepository
	aiService     AIService
	dbPool        transaction.Transactional
	logger        logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	embeddingRepo EmbeddingRepository,
	cacheRepo CacheRepository,
	aiService AIService,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:   productRepo,
		embeddingRepo: embeddingRepo,
		cacheRepo:     cacheRepo,
		aiService:     aiService,
		dbPool:        dbPool,
		logger:        logger,
	}
}

// ListProducts возвращает продукты бизнеса, сначала заглядывая в кэш.
func (c *CatalogUseCase) ListProducts(ctx context.Context, businessID string) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	cached, err := c.cacheRepo.GetProducts(ctx, businessID)
	if err == nil && cached != nil {
		return cached, nil
	}

	products, err := c.productRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.SetProducts(ctx, businessID, products); err != nil {
		c.logger.Warnf("Failed to cache products: %v", e.Wrap(op, err))
	}

	return products, nil
}

// CreateProduct создаёт продукт и индексирует его для семантического поиска.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	var err error
	if err = c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := c.productRepo.Create(ctx, domain.NewProduct(req.BusinessID, req.Name, req.Category, req.Price, req.Stock))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.afterCatalogWrite(ctx, product)

	return product, nil
}

// UpdateProduct обновляет продукт и переиндексирует его вектор.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	var err error
	if err = c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product := domain.NewProduct(req.BusinessID, req.Name, req.Category, req.Price, req.Stock)
	product.ID = req.ProductID

	updated, err := c.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.afterCatalogWrite(ctx, updated)

	return updated, nil
}

// DeleteProduct удаляет продукт из каталога и его вектор из индекса.
// Снапшоты в исторических заказах при этом не меняются.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, businessID string, productID string) error {
	const op = "CatalogUseCase.DeleteProduct"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = c.productRepo.Delete(ctx, businessID, productID); err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.embeddingRepo.Delete(ctx, []string{productID}); err != nil {
		c.logger.Warnf("Failed to delete product vector %s: %v", productID, e.Wrap(op, err))
	}
	if err := c.cacheRepo.Invalidate(ctx, businessID); err != nil {
		c.logger.Warnf("Failed to invalidate cache: %v", e.Wrap(op, err))
	}

	return nil
}

// SearchProducts ищет продукты по смыслу запроса через векторный индекс.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error) {
	const (
		op           = "CatalogUseCase.SearchProducts"
		defaultLimit = 10
	)

	if strings.TrimSpace(req.Query) == "" {
		return nil, e.Wrap(op, e.ErrEmptyQuery)
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	embedded, err := c.aiService.EmbedText(ctx, req.Query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ids, err := c.embeddingRepo.Search(ctx, req.BusinessID, embedded.Vector, req.Limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	products, err := c.productRepo.GetByIDs(ctx, req.BusinessID, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// afterCatalogWrite обновляет векторный индекс и сбрасывает кэш после записи в каталог.
// Ошибки здесь не фатальны: каталог уже зафиксирован в бд.
func (c *CatalogUseCase) afterCatalogWrite(ctx context.Context, product *domain.Product) {
	const op = "CatalogUseCase.afterCatalogWrite"

	if err := c.upsertProductVector(ctx, product); err != nil {
		c.logger.Warnf("Failed to index product %s: %v", product.ID, e.Wrap(op, err))
	}

	if err := c.cacheRepo.Invalidate(ctx, product.BusinessID); err != nil {
		c.logger.Warnf("Failed to invalidate cache: %v", e.Wrap(op, err))
	}
}

// upsertProductVector считает эмбеддинг названия и категории продукта и сохраняет его в индексе.
func (c *CatalogUseCase) upsertProductVector(ctx context.Context, product *domain.Product) error {
	embedded, err := c.aiService.EmbedText(ctx, fmt.Sprintf("%s (%s)", product.Name, product.Category))
	if err != nil {
		return err
	}
	if len(embedded.Vector) == 0 {
		return e.ErrEmptyVector
	}

	payload := domain.NewProductPayload(product.BusinessID, product.ID, product.Name, product.Category, embedded.ModelVersion)
	return c.embeddingRepo.Upsert(ctx, []domain.Embedding{*domain.NewEmbedding(product.ID, embedded.Vector, payload)})
}

// validateProduct проверяет корректность входных данных продукта.
func (c *CatalogUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Stock < 0 {
		return e.ErrNegativeStock
	}

	return nil
}
