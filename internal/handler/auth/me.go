package auth

import (
	"net/http"

	"feedback-portal/internal/api"
	"feedback-portal/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 回傳目前登入的使用者
// @Summary     目前使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MeResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		p := middleware.PrincipalFrom(c)
		if p == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "login required"})
		}
		return c.JSON(http.StatusOK, api.MeResponse{Username: p.Username, Role: string(p.Role)})
	}
}
