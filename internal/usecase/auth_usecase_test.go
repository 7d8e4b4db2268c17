package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
)

func newTestAuthUC(secret string, ttl time.Duration) *AuthUseCase {
	return NewAuthUC(nil, nil, nil, cfg.AuthCfg{
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, testLogger{})
}

func TestValidateRegister(t *testing.T) {
	uc := &AuthUseCase{}

	valid := &RegisterReq{
		Name:         "Budi",
		Email:        "budi@example.com",
		Password:     "rahasia-sekali",
		BusinessName: "Warung Budi",
	}
	assert.NoError(t, uc.validateRegister(valid))

	tests := []struct {
		name    string
		mutate  func(r *RegisterReq)
		wantErr error
	}{
		{"empty name", func(r *RegisterReq) { r.Name = "  " }, e.ErrMissingFields},
		{"empty email", func(r *RegisterReq) { r.Email = "" }, e.ErrMissingFields},
		{"empty business name", func(r *RegisterReq) { r.BusinessName = "" }, e.ErrMissingFields},
		{"short password", func(r *RegisterReq) { r.Password = "1234567" }, e.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *valid
			tt.mutate(&req)
			assert.ErrorIs(t, uc.validateRegister(&req), tt.wantErr)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "budi@example.com", normalizeEmail("  Budi@Example.COM "))
}

func TestTokenRoundTrip(t *testing.T) {
	uc := newTestAuthUC("test-secret", time.Hour)

	token, err := uc.signToken(&domain.User{ID: "user-1", BusinessID: "biz-1"})
	require.NoError(t, err)

	claims, err := uc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "biz-1", claims.BusinessID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := newTestAuthUC("secret-a", time.Hour)
	verifier := newTestAuthUC("secret-b", time.Hour)

	token, err := issuer.signToken(&domain.User{ID: "user-1", BusinessID: "biz-1"})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestParseTokenExpired(t *testing.T) {
	uc := newTestAuthUC("test-secret", -time.Minute)

	token, err := uc.signToken(&domain.User{ID: "user-1", BusinessID: "biz-1"})
	require.NoError(t, err)

	_, err = uc.ParseToken(token)
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestParseTokenGarbage(t *testing.T) {
	uc := newTestAuthUC("test-secret", time.Hour)

	_, err := uc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}
