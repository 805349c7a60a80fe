package auth

import (
	"net/http"

	"feedback-portal/internal/api"
	"feedback-portal/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LogoutHandler 清除 session
// @Summary     登出
// @Description 刪除伺服器端 session 並清除 cookie；未登入時同樣回傳成功
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			if err := d.Sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
				d.Logger.Warn("delete session failed", zap.Error(err))
			}
		}
		c.SetCookie(d.sessionCookie("", -1))
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "you have been logged out"})
	}
}
