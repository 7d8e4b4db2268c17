package http

import (
	"net/http"
	"strconv"

	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// OrderHandler обслуживает проведение заказов и их список.
type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type orderLineRequest struct {
	ProductID   *string `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Price       int64   `json:"price"`
}

type processOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderLineRequest `json:"items"`
}

// processOrder
//
//	@Summary		Проведение заказа
//	@Description	Атомарно создаёт заказ, списывает остатки и публикует событие о продаже
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string				false	"Ключ идемпотентности"
//	@Param			request			body		processOrderRequest	true	"Заказ"
//	@Success		201				{object}	OrderResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409				{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/orders [post]
func (o *OrderHandler) processOrder(w http.ResponseWriter, r *http.Request) {
	var body processOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderLineReq, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, usecase.OrderLineReq{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order, err := o.orderUC.ProcessOrder(r.Context(), usecase.NewProcessOrderReq(
		businessIDFromCtx(r.Context()),
		body.CustomerName,
		body.PaymentMethod,
		r.Header.Get("Idempotency-Key"),
		items,
	))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders
//
//	@Summary	Список заказов с пагинацией, поиском и сортировкой
//	@Tags		orders
//	@Produce	json
//	@Param		page		query		int		false	"Номер страницы"
//	@Param		limit		query		int		false	"Размер страницы"
//	@Param		search		query		string	false	"Поиск по покупателю, позициям и сумме"
//	@Param		sortBy		query		string	false	"date | total"
//	@Param		sortOrder	query		string	false	"asc | desc"
//	@Success	200			{object}	OrdersPageResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	res, err := o.orderUC.ListOrders(r.Context(), &usecase.ListOrdersReq{
		BusinessID: businessIDFromCtx(r.Context()),
		Page:       page,
		Limit:      limit,
		Search:     query.Get("search"),
		SortBy:     query.Get("sortBy"),
		SortOrder:  query.Get("sortOrder"),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrdersPageResponse(res))
}
