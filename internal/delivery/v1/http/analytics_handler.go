package http

import (
	"net/http"
	"strconv"

	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// AnalyticsHandler обслуживает сводки продаж и AI-инсайты.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUC
	logger      logger.Logger
}

func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUC, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC, logger: logger}
}

// getSummary
//
//	@Summary	Сводка продаж за неделю против предыдущей
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{object}	AnalyticsSummaryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/analytics/summary [get]
func (a *AnalyticsHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.analyticsUC.GetSummary(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSummaryResponse(summary))
}

// getDetail
//
//	@Summary	Развёрнутая аналитика за период
//	@Tags		analytics
//	@Produce	json
//	@Param		days	query		int	false	"Период в днях"
//	@Success	200		{object}	AnalyticsDetailResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/analytics/detail [get]
func (a *AnalyticsHandler) getDetail(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	detail, err := a.analyticsUC.GetDetail(r.Context(), &usecase.AnalyticsDetailReq{
		BusinessID: businessIDFromCtx(r.Context()),
		PeriodDays: days,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDetailResponse(detail))
}

// getInsights
//
//	@Summary	AI-инсайты по недельной сводке
//	@Tags		analytics
//	@Produce	json
//	@Success	200	{array}		usecase.Insight
//	@Failure	401	{object}	ErrorResponse
//	@Router		/analytics/insights [get]
func (a *AnalyticsHandler) getInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := a.analyticsUC.GetInsights(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, insights)
}
