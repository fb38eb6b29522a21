package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UsernameKey is the context key the authenticated username is stored under.
const UsernameKey = "username"

var errNotAuthenticated = echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")

// Auth validates the bearer JWT and stores its subject in the context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				return errNotAuthenticated
			}

			claims := &jwt.RegisteredClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tkn.Valid || claims.Subject == "" {
				return errNotAuthenticated
			}

			c.Set(UsernameKey, claims.Subject)
			return next(c)
		}
	}
}
