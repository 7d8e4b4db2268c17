package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/e"
)

type ctxKey string

const (
	ctxUserID     ctxKey = "user_id"
	ctxBusinessID ctxKey = "business_id"
)

// TokenParser проверяет JWT и возвращает его claims.
type TokenParser interface {
	ParseToken(token string) (*usecase.Claims, error)
}

// AuthMiddleware извлекает JWT из cookie либо заголовка Authorization
// и кладёт user_id и business_id запроса в контекст.
// Идентификатор бизнеса дальше по стеку берётся ТОЛЬКО отсюда.
func AuthMiddleware(parser TokenParser, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				WriteError(w, e.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxBusinessID, claims.BusinessID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}

func userIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserID).(string)
	return id
}

func businessIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ctxBusinessID).(string)
	return id
}
