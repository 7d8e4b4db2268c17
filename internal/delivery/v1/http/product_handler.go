package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// ProductHandler обслуживает CRUD каталога и семантический поиск.
type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

type saveProductRequest struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Price    json.Number `json:"price"`
	Stock    int64       `json:"stock"`
}

// listProducts
//
//	@Summary	Список продуктов каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.ListProducts(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// createProduct
//
//	@Summary	Создание продукта
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		saveProductRequest	true	"Продукт"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := p.parseSaveRequest(r, "")
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUC.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Обновление продукта
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"ID продукта"
//	@Param		request	body		saveProductRequest	true	"Продукт"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := p.parseSaveRequest(r, chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUC.UpdateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление продукта
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID продукта"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	err := p.catalogUC.DeleteProduct(r.Context(), businessIDFromCtx(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// searchProducts
//
//	@Summary	Семантический поиск по каталогу
//	@Tags		products
//	@Produce	json
//	@Param		q		query		string	true	"Поисковый запрос"
//	@Param		limit	query		int		false	"Максимум результатов"
//	@Success	200		{array}		ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)

	products, err := p.catalogUC.SearchProducts(r.Context(), &usecase.SearchProductsReq{
		BusinessID: businessIDFromCtx(r.Context()),
		Query:      r.URL.Query().Get("q"),
		Limit:      limit,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

func (p *ProductHandler) parseSaveRequest(r *http.Request, productID string) (*usecase.SaveProductReq, error) {
	var body saveProductRequest
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	price, err := parsePrice(body.Price.String())
	if err != nil {
		return nil, err
	}

	return &usecase.SaveProductReq{
		ProductID:  productID,
		BusinessID: businessIDFromCtx(r.Context()),
		Name:       body.Name,
		Category:   body.Category,
		Price:      price,
		Stock:      body.Stock,
	}, nil
}
