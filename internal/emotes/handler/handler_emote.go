package handler

import (
	"net/http"

	"emotehub/internal/emotes/model"

	"github.com/labstack/echo/v4"
)

// PostEmote handles POST /emotes
func (h *Handler) PostEmote(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateEmoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	emote, err := h.Service.CreateEmote(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, emote)
}

// GetEmote handles GET /emotes/:id
func (h *Handler) GetEmote(c echo.Context) error {
	emote, err := h.Service.GetEmote(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, emote)
}

// GetEmotes handles GET /emotes
func (h *Handler) GetEmotes(c echo.Context) error {
	var req model.ListEmotesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	page, err := h.Service.ListEmotes(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, page)
}

// PatchEmote handles PATCH /emotes/:id
func (h *Handler) PatchEmote(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateEmoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	emote, err := h.Service.UpdateEmote(c.Request().Context(), callerID, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, emote)
}

// DeleteEmote handles DELETE /emotes/:id
func (h *Handler) DeleteEmote(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	reason := c.QueryParam("reason")
	if err := h.Service.DeleteEmote(c.Request().Context(), callerID, c.Param("id"), reason); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
