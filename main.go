package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/arkanum/sentinel/handlers"
	"github.com/arkanum/sentinel/internal/alerts"
	"github.com/arkanum/sentinel/internal/audit"
	"github.com/arkanum/sentinel/internal/config"
	"github.com/arkanum/sentinel/internal/database"
	"github.com/arkanum/sentinel/internal/evidence"
	"github.com/arkanum/sentinel/internal/export"
	"github.com/arkanum/sentinel/internal/invoices"
	"github.com/arkanum/sentinel/internal/registry"
	"github.com/arkanum/sentinel/internal/sessions"
	"github.com/arkanum/sentinel/internal/storage"
	"github.com/arkanum/sentinel/internal/users"
	"github.com/arkanum/sentinel/pkg/logger"
	"github.com/arkanum/sentinel/pkg/metrics"
	"github.com/arkanum/sentinel/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logger.Fatalf("data dir %s: %v", cfg.Data.Dir, err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so sessions and the rate limiter can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Sessions: Redis when available, otherwise in-process memory
	var sessionRepo sessions.Repository
	if redisClient != nil {
		sessionRepo = sessions.NewRedisRepository(redisClient, "session:")
		logger.Infof("Using Redis for session storage")
	} else {
		sessionRepo = sessions.NewMemoryRepository()
	}
	sessionSvc := sessions.NewService(sessionRepo)

	// Collections: MongoDB when configured, otherwise the JSON files
	ctx := context.Background()
	var invoiceRepo invoices.Repository
	var evidenceRepo evidence.Repository
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("MongoDB unavailable, using JSON stores: %v", err)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			invoiceRepo = invoices.NewMongoRepository(db.Collection("cfdis"))
			evidenceRepo = evidence.NewMongoRepository(db.Collection("evidences"))
			logger.Infof("Connected to MongoDB: %s", cfg.MongoDB.Database)
		}
	}
	if invoiceRepo == nil {
		jr, err := invoices.NewJSONRepository(cfg.Data.Dir)
		if err != nil {
			logger.Fatalf("invoice store: %v", err)
		}
		invoiceRepo = jr
	}
	if evidenceRepo == nil {
		jr, err := evidence.NewJSONRepository(cfg.Data.Dir)
		if err != nil {
			logger.Fatalf("evidence store: %v", err)
		}
		evidenceRepo = jr
	}
	alertRepo, err := alerts.NewJSONRepository(cfg.Data.Dir)
	if err != nil {
		logger.Fatalf("alert store: %v", err)
	}
	auditRepo, err := audit.NewJSONRepository(cfg.Data.Dir)
	if err != nil {
		logger.Fatalf("audit store: %v", err)
	}

	// Uploaded files: MinIO when configured, otherwise local disk
	var files storage.Storage
	if cfg.MinIO.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(&storage.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
		})
		if err != nil {
			logger.Warnf("MinIO unavailable, using local uploads: %v", err)
		} else {
			files = ms
			logger.Infof("Using MinIO for uploads: %s/%s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
		}
	}
	if files == nil {
		ls, err := storage.NewLocalStorage(cfg.Data.UploadDir)
		if err != nil {
			logger.Fatalf("upload dir: %v", err)
		}
		files = ls
	}

	accounts, err := users.LoadAccounts(cfg.Data.Dir)
	if err != nil {
		logger.Fatalf("accounts: %v", err)
	}
	userSvc := users.NewService(accounts)

	trail := audit.NewLogger(auditRepo)
	ingestSvc := invoices.NewService(invoiceRepo, alertRepo, evidenceRepo, registry.NewStaticChecker(), trail)
	evidenceSvc := evidence.NewService(evidenceRepo)
	exporter := export.NewExporter(invoiceRepo, alertRepo, auditRepo)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"invoices": true,
			"sessions": true,
			"redis":    true,
		}
		ready := true
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if cfg.RateLimit.UseRedis && redisClient == nil {
				ready = false
			}
		}
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.LoadTemplates(r)
	handlers.NewAuthHandler(userSvc, sessionSvc, trail, cfg.Session.CookieName, cfg.Session.TTL).Register(r)

	auth := r.Group("/", middleware.RequireSession(sessionSvc, userSvc, cfg.Session.CookieName))
	directorOnly := middleware.RequireRole(users.RoleDirector, trail)
	handlers.NewDashboardHandler(ingestSvc, alertRepo).Register(auth)
	handlers.NewCFDIHandler(ingestSvc, files).Register(auth)
	handlers.NewEvidenceHandler(evidenceSvc, files, trail).Register(auth)
	handlers.NewExportHandler(exporter, trail).Register(auth, directorOnly)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting %s on %s", "Sentinel", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
