package http

import (
	"net/http"

	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// BusinessHandler обслуживает профиль бизнеса текущего пользователя.
type BusinessHandler struct {
	businessUC usecase.BusinessUC
	logger     logger.Logger
}

func NewBusinessHandler(businessUC usecase.BusinessUC, logger logger.Logger) *BusinessHandler {
	return &BusinessHandler{businessUC: businessUC, logger: logger}
}

type updateBusinessRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// getBusiness
//
//	@Summary	Профиль бизнеса
//	@Tags		business
//	@Produce	json
//	@Success	200	{object}	BusinessResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/business [get]
func (b *BusinessHandler) getBusiness(w http.ResponseWriter, r *http.Request) {
	business, err := b.businessUC.GetBusiness(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toBusinessResponse(business))
}

// updateBusiness
//
//	@Summary	Обновление реквизитов бизнеса
//	@Tags		business
//	@Accept		json
//	@Produce	json
//	@Param		request	body		updateBusinessRequest	true	"Реквизиты; отсутствующие поля не меняются"
//	@Success	200		{object}	BusinessResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/business [put]
func (b *BusinessHandler) updateBusiness(w http.ResponseWriter, r *http.Request) {
	var body updateBusinessRequest
	if err := decodeJSON(r, &body); err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	business, err := b.businessUC.UpdateBusiness(r.Context(), &usecase.UpdateBusinessReq{
		BusinessID: businessIDFromCtx(r.Context()),
		Name:       body.Name,
		Address:    body.Address,
	})
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toBusinessResponse(business))
}
