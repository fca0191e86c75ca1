package handler

import (
	"emotehub/internal/emotes/service"

	"github.com/labstack/echo/v4"
)

// ContextCallerID is the echo context key the auth middleware stores the
// authenticated user's id under.
const ContextCallerID = "caller_id"

type Handler struct {
	Service service.EmoteService
}

func NewHandler(s service.EmoteService) *Handler {
	return &Handler{Service: s}
}

func (h *Handler) extractCallerID(c echo.Context) (string, error) {
	callerID, _ := c.Get(ContextCallerID).(string)
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}
