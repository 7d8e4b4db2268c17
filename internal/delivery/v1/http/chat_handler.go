package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// ChatHandler обслуживает диалог с AI-советником.
type ChatHandler struct {
	chatUC usecase.ChatUC
	logger logger.Logger
}

func NewChatHandler(chatUC usecase.ChatUC, logger logger.Logger) *ChatHandler {
	return &ChatHandler{chatUC: chatUC, logger: logger}
}

type sendMessageRequest struct {
	SessionID string `json:"sessionId"`
	Content   string `json:"content"`
}

// sendMessage
//
//	@Summary		Сообщение AI-советнику
//	@Description	Пустой sessionId создаёт новую сессию
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sendMessageRequest	true	"Сообщение"
//	@Success		200		{object}	SendMessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/chat/messages [post]
func (c *ChatHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body sendMessageRequest
	if err := decodeJSON(r, &body); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := c.chatUC.SendMessage(r.Context(), &usecase.SendMessageReq{
		BusinessID: businessIDFromCtx(r.Context()),
		SessionID:  body.SessionID,
		Content:    body.Content,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, SendMessageResponse{
		SessionID: res.SessionID,
		Reply:     toMessageResponse(res.Reply),
	})
}

// listSessions
//
//	@Summary	Список сессий чата
//	@Tags		chat
//	@Produce	json
//	@Success	200	{array}		ChatSessionResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/chat/sessions [get]
func (c *ChatHandler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.chatUC.ListSessions(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionsResponse(sessions))
}

// createSession
//
//	@Summary	Создание пустой сессии
//	@Tags		chat
//	@Produce	json
//	@Success	201	{object}	ChatSessionResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/chat/sessions [post]
func (c *ChatHandler) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := c.chatUC.CreateSession(r.Context(), businessIDFromCtx(r.Context()))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toSessionResponse(session))
}

// getSession
//
//	@Summary	Сессия с историей сообщений
//	@Tags		chat
//	@Produce	json
//	@Param		id	path		string	true	"ID сессии"
//	@Success	200	{object}	ChatSessionResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/chat/sessions/{id} [get]
func (c *ChatHandler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := c.chatUC.GetSession(r.Context(), businessIDFromCtx(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toSessionResponse(session))
}

// deleteSession
//
//	@Summary	Удаление сессии вместе с сообщениями
//	@Tags		chat
//	@Produce	json
//	@Param		id	path		string	true	"ID сессии"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	ErrorResponse
//	@Router		/chat/sessions/{id} [delete]
func (c *ChatHandler) deleteSession(w http.ResponseWriter, r *http.Request) {
	err := c.chatUC.DeleteSession(r.Context(), businessIDFromCtx(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}
