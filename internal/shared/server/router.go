package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ideacheck-backend/internal/llm"
	"ideacheck-backend/internal/llm/openai"
	"ideacheck-backend/internal/reports"
	"ideacheck-backend/internal/research"
	"ideacheck-backend/internal/shared/config"
	"ideacheck-backend/internal/shared/metrics"
	"ideacheck-backend/internal/shared/server/middleware"
	"ideacheck-backend/internal/shared/server/respond"
	"ideacheck-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo reports.Repo
	if sqlDB != nil {
		repo = &reports.PGRepo{DB: sqlDB}
	} else {
		repo = reports.NewMemoryRepo()
	}

	var analysisLLM, queryLLM llm.Client
	if cfg.LLMAPIKey != "" {
		client, err := openai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("analysis LLM client unavailable: %v", err)
		} else {
			analysisLLM = client
		}
		queryClient, err := openai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.QueryModel)
		if err != nil {
			log.Printf("query LLM client unavailable: %v", err)
		} else {
			queryLLM = queryClient
		}
	}

	var synth research.Synthesizer
	if queryLLM != nil {
		synth = &research.LLMSynthesizer{Client: queryLLM}
	} else {
		synth = research.RuleBased{}
	}

	svc := &reports.Service{
		Repo:        repo,
		LLM:         analysisLLM,
		Synth:       synth,
		Competitors: research.NewCompetitorAdapter(cfg.FirecrawlAPIKey),
		Similar:     research.NewSimilarProductAdapter(cfg.ProductHuntClientID, cfg.ProductHuntClientSecret),
	}
	handler := reports.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	handler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
