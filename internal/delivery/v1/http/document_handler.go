package http

import (
	"net/http"

	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// DocumentHandler обслуживает генерацию деловых документов.
type DocumentHandler struct {
	documentUC usecase.DocumentUC
	logger     logger.Logger
}

func NewDocumentHandler(documentUC usecase.DocumentUC, logger logger.Logger) *DocumentHandler {
	return &DocumentHandler{documentUC: documentUC, logger: logger}
}

type generateDocumentRequest struct {
	Type string `json:"type"` // invoice | sales_report | summary
}

// generateDocument
//
//	@Summary	Генерация документа по данным бизнеса
//	@Tags		documents
//	@Accept		json
//	@Produce	json
//	@Param		request	body		generateDocumentRequest	true	"Тип документа"
//	@Success	200		{object}	DocumentResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/documents [post]
func (d *DocumentHandler) generateDocument(w http.ResponseWriter, r *http.Request) {
	var body generateDocumentRequest
	if err := decodeJSON(r, &body); err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	content, err := d.documentUC.GenerateDocument(r.Context(), &usecase.GenerateDocumentReq{
		BusinessID: businessIDFromCtx(r.Context()),
		Type:       body.Type,
	})
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, DocumentResponse{Type: body.Type, Content: content})
}
