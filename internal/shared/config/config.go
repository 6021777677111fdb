package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the screening pipeline. The job roles mirror the submission
// form; override with JOB_ROLES.
var defaultJobRoles = []string{
	"Machine Learning Engineer",
	"Agentic AI Engineer",
	"Software Developer",
	"Data Engineer",
}

// Config holds application configuration. It is read once at startup and
// treated as immutable afterwards.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigins []string

	JobRoles       []string
	ATSThreshold   int
	MaxUploadBytes int64

	LLMProvider      string
	LLMModel         string
	GeminiAPIKey     string
	OpenAIAPIKey     string
	LLMTimeout       time.Duration
	RetryMaxAttempts int
	RetryBaseDelay   time.Duration

	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	CompanyName    string
	SMTPTimeout    time.Duration

	DatabaseURL string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	env := normalizeEnv(getEnv("ENV", "dev"))

	provider := normalizeProvider(getEnv("LLM_PROVIDER", "gemini"))
	model := getEnv("LLM_MODEL", "")
	if model == "" {
		switch provider {
		case "openai":
			model = "gpt-4o-mini"
		default:
			model = "gemini-2.0-flash"
		}
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		CORSAllowOrigins: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		JobRoles:       loadJobRoles(),
		ATSThreshold:   getEnvInt("ATS_THRESHOLD", 70),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		LLMProvider:      provider,
		LLMModel:         model,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMTimeout:       getEnvSeconds("LLM_TIMEOUT_SECONDS", 60*time.Second),
		RetryMaxAttempts: getEnvInt("LLM_RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:   getEnvDuration("LLM_RETRY_BASE_DELAY", time.Second),

		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		CompanyName:    getEnv("COMPANY_NAME", "Our Company"),
		SMTPTimeout:    getEnvSeconds("SMTP_TIMEOUT_SECONDS", 15*time.Second),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 1),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),
	}
}

func loadJobRoles() []string {
	raw := os.Getenv("JOB_ROLES")
	if strings.TrimSpace(raw) == "" {
		roles := make([]string, len(defaultJobRoles))
		copy(roles, defaultJobRoles)
		return roles
	}
	return splitAndTrim(raw)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid float %q, using %v", key, raw, def)
		return def
	}
	return val
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Printf("config %s invalid seconds %q, using %v", key, raw, def)
		return def
	}
	return time.Duration(val) * time.Second
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config %s invalid duration %q, using %v", key, raw, def)
		return def
	}
	return val
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

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	default:
		return "gemini"
	}
}
