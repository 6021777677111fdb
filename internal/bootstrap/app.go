package bootstrap

import (
	"context"
	"database/sql"

	"screening-backend/internal/llm"
	"screening-backend/internal/llm/gemini"
	"screening-backend/internal/llm/openai"
	"screening-backend/internal/notify"
	"screening-backend/internal/screening"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/storage/db"
	"screening-backend/internal/shared/telemetry"
)

// App holds the wired application dependencies.
type App struct {
	Config   config.Config
	Pipeline *screening.Pipeline
	Handler  *screening.Handler
	DB       *sql.DB
}

// Build wires the pipeline from configuration. Missing optional pieces
// (database, SMTP, API key) degrade to in-memory or no-op implementations
// so dev environments start without external services.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	var repo screening.Repo
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("bootstrap.db_unavailable", map[string]any{"error": err.Error()})
		} else if err := db.RunMigrations(ctx, conn); err != nil {
			telemetry.Warn("bootstrap.migrations_failed", map[string]any{"error": err.Error()})
			_ = conn.Close()
		} else {
			app.DB = conn
			repo = &screening.PGRepo{DB: conn}
		}
	}
	if repo == nil {
		repo = screening.NewMemoryRepo()
		telemetry.Info("bootstrap.repo", map[string]any{"store": "memory"})
	}

	client := buildLLMClient(ctx, cfg)
	notifier := buildNotifier(cfg)

	app.Pipeline = &screening.Pipeline{
		Roles:            cfg.JobRoles,
		ATSThreshold:     cfg.ATSThreshold,
		CompanyName:      cfg.CompanyName,
		LLM:              client,
		Notifier:         notifier,
		Repo:             repo,
		RetryMaxAttempts: cfg.RetryMaxAttempts,
		RetryBaseDelay:   cfg.RetryBaseDelay,
		LLMTimeout:       cfg.LLMTimeout,
	}
	app.Handler = &screening.Handler{
		Pipeline:       app.Pipeline,
		Repo:           repo,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildLLMClient(ctx context.Context, cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": "openai"})
			return &llm.PlaceholderClient{}
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			telemetry.Error("bootstrap.llm_init_failed", map[string]any{"provider": "openai", "error": err.Error()})
			return &llm.PlaceholderClient{}
		}
		return client
	default:
		if cfg.GeminiAPIKey == "" {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": "gemini"})
			return &llm.PlaceholderClient{}
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Error("bootstrap.llm_init_failed", map[string]any{"provider": "gemini", "error": err.Error()})
			return &llm.PlaceholderClient{}
		}
		return client
	}
}

func buildNotifier(cfg config.Config) notify.Notifier {
	if cfg.SMTPHost == "" || cfg.SenderEmail == "" {
		telemetry.Warn("bootstrap.notifier_unconfigured", nil)
		return notify.NopNotifier{}
	}
	mailer, err := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword, cfg.CompanyName, cfg.SMTPTimeout)
	if err != nil {
		telemetry.Error("bootstrap.notifier_init_failed", map[string]any{"error": err.Error()})
		return notify.NopNotifier{}
	}
	return mailer
}
