// @title        Student Feedback Portal API
// @version      1.0
// @description  學生提交課程回饋、管理員檢視所有回饋的後端 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"feedback-portal/internal/cache"
	"feedback-portal/internal/config"
	"feedback-portal/internal/database"
	"feedback-portal/internal/logger"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/router"
	"feedback-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "feedback-portal/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig       = config.Load
	newLogger        = logger.New
	newPgxPool       = database.NewPgxPool
	newRedisClient   = cache.NewRedisClient
	runMigrationsFn  = database.RunMigrations
	rollbackAllFn    = database.RollbackAll
	initializePortal = func(ctx context.Context, p *service.Portal) error { return p.Initialize(ctx) }
	startServer      = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc         = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zl, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	if cfg.MigrateDown {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 退回失敗: %w", err)
		}
		zl.Info("all migrations rolled back")
		return nil
	}

	ctx := context.Background()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	portal := service.NewPortal(db)
	if err := initializePortal(ctx, portal); err != nil {
		return fmt.Errorf("預設帳號建立失敗: %w", err)
	}
	zl.Info("storage initialized")

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestLogger(zl))
	e.Use(echomw.Recover())

	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        redis,
		Portal:       portal,
		Sessions:     service.NewSessionStore(redis, cfg.SessionTTL),
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
		Logger:       zl,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	zl.Info("listening", zap.String("addr", cfg.HTTPAddr))
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
