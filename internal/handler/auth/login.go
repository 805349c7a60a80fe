// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"net/http"
	"time"

	"feedback-portal/internal/api"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/model"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const invalidCredentials = "invalid username or password"

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.Principal, error)
}

type SessionManager interface {
	Create(ctx context.Context, p model.Principal) (string, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer 為已驗證的身分簽發存取令牌
type TokenIssuer func(p model.Principal) (string, time.Time, error)

// Deps 登入/登出 handler 的相依元件
type Deps struct {
	Authenticator Authenticator
	Sessions      SessionManager
	IssueToken    TokenIssuer
	SessionTTL    time.Duration
	CookieSecure  bool
	Logger        *zap.Logger
}

func (d Deps) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   d.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func redirectFor(role model.Role) string {
	if role == model.RoleAdmin {
		return "/admin"
	}
	return "/feedback"
}

// LoginHandler 使用 Username/Password 驗證，建立 session 並回傳 JWT
// @Summary     登入使用者
// @Description 驗證帳號密碼，成功時設定 session cookie 並回傳存取令牌；帳號不存在與密碼錯誤回傳相同訊息
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username is required"})
		}

		ctx := c.Request().Context()
		p, err := d.Authenticator.Authenticate(ctx, req.Username, req.Password)
		if err != nil {
			d.Logger.Error("login failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "login error occurred"})
		}
		if p == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: invalidCredentials})
		}

		token, expiresAt, err := d.IssueToken(*p)
		if err != nil {
			d.Logger.Error("issue token failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "login error occurred"})
		}

		sid, err := d.Sessions.Create(ctx, *p)
		if err != nil {
			d.Logger.Error("create session failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "login error occurred"})
		}
		c.SetCookie(d.sessionCookie(sid, int(d.SessionTTL.Seconds())))

		return c.JSON(http.StatusOK, api.LoginResponse{
			Username:    p.Username,
			Role:        string(p.Role),
			AccessToken: token,
			ExpiresAt:   expiresAt,
			Redirect:    redirectFor(p.Role),
		})
	}
}
