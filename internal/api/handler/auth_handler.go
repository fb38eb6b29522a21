package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AccountService
}

func NewAuthHandler(authService ports.AccountService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns its public view.
//
//	POST /users/  {"username", "password"}  → 201 {"id", "username"}
func (h *AuthHandler) Register(c echo.Context) error {
	var req domain.CredentialsPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login checks the credentials and returns a bearer token.
//
//	POST /auth/login  {"username", "password"}  → 200 {"token", "token_type"}
func (h *AuthHandler) Login(c echo.Context) error {
	var req domain.CredentialsPayload
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.TokenResponse{Token: token, TokenType: "bearer"})
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	return c.Validate(req)
}
