package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// Claims — полезная нагрузка JWT: пользователь и его бизнес.
type Claims struct {
	UserID     string `json:"uid"`
	BusinessID string `json:"bid"`
	jwt.RegisteredClaims
}

// AuthUseCase реализует регистрацию, вход и выдачу JWT.
type AuthUseCase struct {
	userRepo     UserRepository
	businessRepo BusinessRepository
	dbPool       transaction.Transactional
	authCfg      cfg.AuthCfg
	logger       logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	businessRepo BusinessRepository,
	dbPool transaction.Transactional,
	authCfg cfg.AuthCfg,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		dbPool:       dbPool,
		authCfg:      authCfg,
		logger:       logger,
	}
}

// Register создаёт бизнес и его первого пользователя одной транзакцией
// и сразу выдаёт токен.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*AuthRes, error) {
	const op = "AuthUseCase.Register"

	var err error
	if err = a.validateRegister(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	business, err := a.businessRepo.Create(ctx, domain.NewBusiness(req.BusinessName, ""))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, domain.NewUser(business.ID, req.Name, normalizeEmail(req.Email), string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Business: business, Token: token}, nil
}

// Login проверяет учётные данные и выдаёт токен. Несуществующий email
// и неверный пароль дают одну и ту же ошибку.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	business, err := a.businessRepo.GetByID(ctx, user.BusinessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Business: business, Token: token}, nil
}

// Me возвращает профиль пользователя и его бизнес по ID из токена.
func (a *AuthUseCase) Me(ctx context.Context, userID string) (*AuthRes, error) {
	const op = "AuthUseCase.Me"

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	business, err := a.businessRepo.GetByID(ctx, user.BusinessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Business: business}, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
func (a *AuthUseCase) ParseToken(token string) (*Claims, error) {
	const op = "AuthUseCase.ParseToken"

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrUnauthorized
		}
		return []byte(a.authCfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	return claims, nil
}

// signToken выпускает HS256-токен с пользователем и бизнесом в claims.
func (a *AuthUseCase) signToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID:     user.ID,
		BusinessID: user.BusinessID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.authCfg.TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.authCfg.JWTSecret))
}

// validateRegister проверяет обязательные поля регистрации.
func (a *AuthUseCase) validateRegister(req *RegisterReq) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.BusinessName) == "" {
		return e.ErrMissingFields
	}

	if len(req.Password) < minPasswordLength {
		return e.ErrPasswordTooShort
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
