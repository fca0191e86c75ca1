package router

import (
	"emotehub/internal/emotes/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.Handler, authMW *handler.AuthMiddleware) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)
	v1.Use(authMW.Middleware())

	// Emotes
	v1.POST("/emotes", h.PostEmote)
	v1.GET("/emotes", h.GetEmotes)
	v1.GET("/emotes/:id", h.GetEmote)
	v1.PATCH("/emotes/:id", h.PatchEmote)
	v1.DELETE("/emotes/:id", h.DeleteEmote)

	// Roles
	v1.GET("/roles", h.GetRoles)
	v1.POST("/roles", h.PostRole)
	v1.PATCH("/roles/:id", h.PatchRole)
	v1.DELETE("/roles/:id", h.DeleteRole)

	// Users
	v1.GET("/users/me", h.GetMe)
	v1.GET("/users/:id", h.GetUser)
	v1.POST("/users", h.PostUser)
	v1.PUT("/users/:id/role", h.PutUserRole)
	v1.POST("/users/:id/editors", h.PostEditor)
	v1.DELETE("/users/:id/editors/:editorID", h.DeleteEditor)

	// Bans
	v1.POST("/bans", h.PostBan)
	v1.DELETE("/bans/:userID", h.DeleteBan)

	// Reports
	v1.POST("/reports", h.PostReport)
	v1.GET("/reports", h.GetReports)
	v1.PATCH("/reports/:id/clear", h.PatchReportClear)

	// Audit logs
	v1.GET("/audit/logs", h.GetAuditLogs)
}
