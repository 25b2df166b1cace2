// Package auth guards the admin surface (catalog refresh, seeding, on-demand
// self tests). There are no user accounts in this service; callers present
// either a JWT signed with ADMIN_JWT_SECRET or the shared admin secret
// checked against its bcrypt hash in ADMIN_SECRET_HASH.
package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const adminScope = "admin"

// RequireAdmin validates admin credentials on the request.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if secret := c.Request().Header.Get("X-Admin-Secret"); secret != "" {
			hash := os.Getenv("ADMIN_SECRET_HASH")
			if hash == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "Server admin configuration error")
			}
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid admin secret")
			}
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
		}

		secretKey := []byte(os.Getenv("ADMIN_JWT_SECRET"))
		if len(secretKey) == 0 {
			return echo.NewHTTPError(http.StatusInternalServerError, "Server auth configuration error")
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secretKey, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["scope"] != adminScope {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token lacks admin scope")
		}

		return next(c)
	}
}

// MintAdminToken issues a short-lived admin JWT. Used by ops tooling and
// tests; the server never mints tokens on its own.
func MintAdminToken(secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"scope": adminScope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
