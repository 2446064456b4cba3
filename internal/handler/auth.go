package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/config"
	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/utils"
	"github.com/iliyamo/land-marketplace/internal/validator"
)

// UserRegistry is the mock identity provider behind the auth endpoints.
type UserRegistry interface {
	Create(ctx context.Context, name, phone, email, password string) (model.Identity, error)
	Authenticate(ctx context.Context, email, password string) (model.Identity, error)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserRegistry
}

func NewAuthHandler(cfg config.Config, u UserRegistry) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   model.Identity `json:"user"`
	Access tokenPart      `json:"access"`
}

// Register creates a user and returns an access token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validator.FirstError(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Name, req.Phone, req.Email, req.Password)
	if errors.Is(err, repository.ErrEmailExists) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return h.issue(c, http.StatusCreated, id)
}

// Login verifies credentials and returns a new access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Users.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, repository.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return h.issue(c, http.StatusOK, id)
}

// Me returns the identity carried by the access token.
func (h *AuthHandler) Me(c echo.Context) error {
	id, ok := currentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, id)
}

func (h *AuthHandler) issue(c echo.Context, status int, id model.Identity) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(status, authResp{
		User:   id,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
