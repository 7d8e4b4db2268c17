package http

import (
	"net/http"
	"time"

	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// AuthHandler обслуживает регистрацию, вход и профиль.
// Токен выдаётся HttpOnly-cookie.
type AuthHandler struct {
	authUC  usecase.AuthUC
	authCfg *cfg.AuthCfg
	logger  logger.Logger
}

func NewAuthHandler(authUC usecase.AuthUC, authCfg *cfg.AuthCfg, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, authCfg: authCfg, logger: logger}
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register
//
//	@Summary	Регистрация бизнеса и первого пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		registerRequest	true	"Регистрация"
//	@Success	201		{object}	AuthResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"Email занят"
//	@Router		/auth/register [post]
func (a *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(r, &body); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := a.authUC.Register(r.Context(), &usecase.RegisterReq{
		Name:         body.Name,
		Email:        body.Email,
		Password:     body.Password,
		BusinessName: body.BusinessName,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.setTokenCookie(w, res.Token)
	WriteSuccess(w, http.StatusCreated, toAuthResponse(res))
}

// login
//
//	@Summary	Вход по email и паролю
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		loginRequest	true	"Учётные данные"
//	@Success	200		{object}	AuthResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := a.authUC.Login(r.Context(), &usecase.LoginReq{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.setTokenCookie(w, res.Token)
	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

// logout
//
//	@Summary	Выход: сброс cookie с токеном
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	map[string]bool
//	@Router		/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.authCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	WriteSuccess(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// me
//
//	@Summary	Профиль текущего пользователя и его бизнес
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	AuthResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (a *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	res, err := a.authUC.Me(r.Context(), userIDFromCtx(r.Context()))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

func (a *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.authCfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(a.authCfg.TokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
