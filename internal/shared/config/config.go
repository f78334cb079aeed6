package config

import (
	"log"
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string

	// LLM gateway settings. APIKey is required for the analyze endpoint;
	// QueryModel drives the lightweight search-query synthesis call.
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	QueryModel string

	// External research credentials. All optional: absence disables the
	// corresponding adapter.
	FirecrawlAPIKey         string
	ProductHuntClientID     string
	ProductHuntClientSecret string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		DatabaseURL:     dbURL,
		Env:             env,

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),
		QueryModel: getEnv("QUERY_MODEL", "gpt-4o-mini"),

		FirecrawlAPIKey:         getEnv("FIRECRAWL_API_KEY", ""),
		ProductHuntClientID:     getEnv("PRODUCT_HUNT_API_KEY", ""),
		ProductHuntClientSecret: getEnv("PRODUCT_HUNT_API_SECRET", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
