package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/catalog"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/config"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/db"
	apihttp "github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/http"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/repository"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/scoring"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	questions, err := catalog.Dataset(catalog.SupportedVersion)
	if err != nil {
		logger.Fatal("load question dataset", zap.Error(err))
	}
	engine := scoring.NewEngine(questions)

	diagnosisRepo := repository.NewPgDiagnosisRepository(pool)

	var (
		limiter service.SubmitRateLimiter
		cache   service.ResultCache
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmitRateLimiter(redisClient, time.Duration(cfg.SubmitWindowMinutes)*time.Minute, cfg.SubmitMaxAttempts)
			cache = service.NewRedisResultCache(redisClient)
		}
		cancel()
	}

	diagnosisSvc := service.NewDiagnosisService(
		engine,
		diagnosisRepo,
		cache,
		limiter,
		time.Duration(cfg.ResultCacheTTLHours)*time.Hour,
		logger,
	)
	diagnosisHandler := apihttp.NewDiagnosisHandler(logger, diagnosisSvc)
	router := apihttp.NewRouter(logger, diagnosisHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("catalog_version", catalog.SupportedVersion),
		zap.Int("question_count", engine.ExpectedAnswerCount()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
