// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"feedback-portal/internal/api"
	"feedback-portal/internal/cache"
	"feedback-portal/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 session 快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
