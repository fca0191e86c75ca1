package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"emotehub/internal/emotes/auth"
	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			b := make([]byte, 16)
			_, _ = rand.Read(b)
			reqID = hex.EncodeToString(b)
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

// AuthMiddleware authenticates requests from a bearer access token and
// stores the caller's id in the request context.
type AuthMiddleware struct {
	Tokens *auth.Manager
	Repo   repository.Repository
}

func NewAuthMiddleware(tokens *auth.Manager, repo repository.Repository) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens, Repo: repo}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
		Error: model.ErrorDetail{Code: "unauthorized", Message: msg},
	})
}

func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "Missing bearer token")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "Malformed authorization header")
			}

			claims, err := m.Tokens.ParseAccess(parts[1])
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}

			uid, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}
			user, err := m.Repo.GetUser(c.Request().Context(), uid)
			if err != nil {
				code, body := httpError(err)
				return c.JSON(code, body)
			}
			if user == nil {
				return unauthorized(c, "Unknown user")
			}

			// Tokens minted before the last version bump are dead.
			if user.TokenVersion != claims.TokenVersion {
				return unauthorized(c, "Token has been revoked")
			}

			ban, err := m.Repo.GetActiveBan(c.Request().Context(), user.ID)
			if err != nil {
				code, body := httpError(err)
				return c.JSON(code, body)
			}
			if ban != nil && !ban.Expired(time.Now()) {
				return unauthorized(c, "Account is banned")
			}

			c.Set(ContextCallerID, user.ID.Hex())
			return next(c)
		}
	}
}
