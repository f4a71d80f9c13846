package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/db"
	httpadapter "github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/handlers"
	httpmiddleware "github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/insight"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/localstore"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/app/service"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/config"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/ports"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/seed"
	"github.com/DEvILSG007/ScholarSyncPlanner/pkg/translator"

	"github.com/jmoiron/sqlx"
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
	ctx := context.Background()

	var (
		taskRepository    ports.TaskRepository
		subjectRepository ports.SubjectRepository
		goalRepository    ports.GoalRepository
		sessionRepository ports.SessionRepository
		db                *sqlx.DB
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMySQL:
		db, err = dbadapter.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
		taskRepository = dbadapter.NewTaskRepository(db)
		subjectRepository = dbadapter.NewSubjectRepository(db)
		goalRepository = dbadapter.NewGoalRepository(db)
		sessionRepository = dbadapter.NewSessionRepository(db)
	default:
		store, err := localstore.Open(cfg.LocalStorePath)
		if err != nil {
			logger.Fatal("failed to open local store", zap.String("path", cfg.LocalStorePath), zap.Error(err))
		}
		taskRepository = localstore.NewTaskStore(store)
		subjectRepository = localstore.NewSubjectStore(store)
		goalRepository = localstore.NewGoalStore(store)
		sessionRepository = localstore.NewSessionStore(store)
	}

	taskService := service.NewTaskService(taskRepository)
	subjectService := service.NewSubjectService(subjectRepository)
	goalService := service.NewGoalService(goalRepository)
	sessionService := service.NewSessionService(sessionRepository, goalRepository)
	plannerService := service.NewPlannerService(taskRepository, subjectRepository, cfg.VisibleStartHour, cfg.VisibleEndHour)
	digestService := service.NewDigestService(taskRepository, goalRepository)
	focusEngine := service.NewFocusEngine(sessionService)

	var insightClient ports.InsightClient
	if cfg.GeminiAPIKey != "" {
		client, err := insight.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("failed to init gemini client", zap.Error(err))
		}
		insightClient = client
	} else {
		logger.Info("GEMINI_API_KEY not set, insights disabled")
	}
	insightService := service.NewInsightService(insightClient, taskRepository, goalRepository, sessionRepository)

	if cfg.StorageDriver == config.StorageDriverLocal {
		if err := seed.Apply(ctx, domain.ScopeLocal, subjectService, goalService); err != nil {
			logger.Warn("failed to seed default data", zap.Error(err))
		}
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.DigestAt, func() {
		digest, err := digestService.DailyDigest(context.Background(), domain.ScopeLocal, time.Now())
		if err != nil {
			zap.L().Error("failed to build daily digest", zap.Error(err))
			return
		}
		zap.L().Info("daily digest", zap.String("digest", digest))
	}); err != nil {
		logger.Fatal("failed to schedule daily digest", zap.String("at", cfg.DigestAt), zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(db, cfg.StorageDriver),
		Task:    handlers.NewTaskHandler(taskService),
		Subject: handlers.NewSubjectHandler(subjectService),
		Goal:    handlers.NewGoalHandler(goalService),
		Session: handlers.NewSessionHandler(sessionService),
		Planner: handlers.NewPlannerHandler(plannerService),
		Focus:   handlers.NewFocusHandler(focusEngine),
		Insight: handlers.NewInsightHandler(insightService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server",
		zap.String("addr", addr), zap.String("storage_driver", cfg.StorageDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
