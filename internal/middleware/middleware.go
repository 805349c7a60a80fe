package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"feedback-portal/internal/model"
	"feedback-portal/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextPrincipalKey = "principal"
	SessionCookieName   = "session_id"
)

// TokenVerifier 解析 Bearer token 並回傳身分
type TokenVerifier func(token string) (*model.Principal, error)

// SessionReader 依 session id 讀取身分
type SessionReader interface {
	Get(ctx context.Context, id string) (*model.Principal, error)
}

// Auth 從 Bearer JWT 或 session cookie 取得目前的使用者
type Auth struct {
	verify   TokenVerifier
	sessions SessionReader
}

func NewAuth(verify TokenVerifier, sessions SessionReader) *Auth {
	return &Auth{verify: verify, sessions: sessions}
}

func (a *Auth) resolve(c echo.Context) (*model.Principal, error) {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		p, err := a.verify(parts[1])
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
		}
		return p, nil
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	p, err := a.sessions.Get(c.Request().Context(), cookie.Value)
	if errors.Is(err, service.ErrSessionNotFound) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable").SetInternal(err)
	}
	return p, nil
}

func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := a.resolve(c)
		if err != nil {
			return err
		}
		c.Set(ContextPrincipalKey, p)
		return next(c)
	}
}

// RequireRole 只允許指定角色通過，角色不符回傳 403
func (a *Auth) RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return a.RequireAuth(func(c echo.Context) error {
			if PrincipalFrom(c).Role != role {
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("%s privileges required", role))
			}
			return next(c)
		})
	}
}

// PrincipalFrom 取出 RequireAuth 設定的身分，未設定時回傳 nil
func PrincipalFrom(c echo.Context) *model.Principal {
	p, _ := c.Get(ContextPrincipalKey).(*model.Principal)
	return p
}
