package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/db"
	httpadapter "github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/handlers"
	httpmiddleware "github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/middleware"
	appservice "github.com/CxTrack/PostBuild-CRM-sub002/internal/app/service"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/config"
	"github.com/CxTrack/PostBuild-CRM-sub002/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.RunMigrations(db, cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	eventRepository := dbadapter.NewEventRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	eventService := appservice.NewEventService(eventRepository)
	taskService := appservice.NewTaskService(taskRepository, eventRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	eventHandler := handlers.NewEventHandler(eventService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, eventHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
