// File: internal/router/router.go
package router

import (
	"time"

	"feedback-portal/internal/cache"
	"feedback-portal/internal/database"
	"feedback-portal/internal/handler"
	"feedback-portal/internal/handler/auth"
	"feedback-portal/internal/handler/feedback"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/model"
	"feedback-portal/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps 路由所需的共用元件，皆於啟動時建立一次
type Deps struct {
	DB           database.DB
	Cache        cache.Cache
	Portal       *service.Portal
	Sessions     *service.SessionStore
	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool
	Logger       *zap.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	authn := middleware.NewAuth(func(tok string) (*model.Principal, error) {
		return service.VerifyAccessToken(tok, d.JWTSecret)
	}, d.Sessions)

	authDeps := auth.Deps{
		Authenticator: d.Portal,
		Sessions:      d.Sessions,
		IssueToken: func(p model.Principal) (string, time.Time, error) {
			return service.IssueAccessToken(p, d.JWTSecret, d.SessionTTL)
		},
		SessionTTL:   d.SessionTTL,
		CookieSecure: d.CookieSecure,
		Logger:       d.Logger,
	}

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入、登出與目前使用者
	api.POST("/auth/login", auth.LoginHandler(authDeps))
	api.POST("/auth/logout", auth.LogoutHandler(authDeps))
	api.GET("/me", auth.MeHandler(), authn.RequireAuth)

	// 學生提交回饋，管理員檢視全部
	api.POST("/feedback", feedback.SubmitFeedbackHandler(d.Portal, d.Logger), authn.RequireRole(model.RoleStudent))
	api.GET("/feedback", feedback.ListFeedbackHandler(d.Portal, d.Logger), authn.RequireRole(model.RoleAdmin))
}
