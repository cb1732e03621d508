package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/accounts"
	"recruit-backend/internal/forms"
	"recruit-backend/internal/jdparse"
	"recruit-backend/internal/review"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/server"
	"recruit-backend/internal/shared/storage/db"
	"recruit-backend/internal/shared/storage/object"
	localstore "recruit-backend/internal/shared/storage/object/local"
	s3store "recruit-backend/internal/shared/storage/object/s3"
	"recruit-backend/internal/submissions"
	"recruit-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersRepo       users.Repo
	FormsRepo       forms.FormsRepo
	SubmissionsRepo submissions.SubmissionsRepo

	AccountsService    *accounts.Service
	FormsService       *forms.Service
	SubmissionsService *submissions.Service

	AccountsHandler    *accounts.Handler
	FormsHandler       *forms.Handler
	SubmissionsHandler *submissions.Handler
	ReviewHandler      *review.Handler
	JDParseHandler     *jdparse.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		AccountsHandler:    app.AccountsHandler,
		FormsHandler:       app.FormsHandler,
		SubmissionsHandler: app.SubmissionsHandler,
		ReviewHandler:      app.ReviewHandler,
		JDParseHandler:     app.JDParseHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
		if baseURL == "" {
			baseURL = "http://localhost:" + cfg.Port
		}
		return localstore.New(cfg.LocalStoreDir, baseURL), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.FormsRepo = &forms.PGRepo{DB: app.DB}
		app.SubmissionsRepo = &submissions.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.FormsRepo = forms.NewMemoryRepo()
		app.SubmissionsRepo = submissions.NewMemoryRepo()
	}

	var mailer accounts.Mailer = accounts.LogMailer{}
	if strings.TrimSpace(app.Config.SMTPHost) != "" {
		mailer = accounts.NewSMTPMailer(
			app.Config.SMTPHost,
			app.Config.SMTPPort,
			app.Config.SMTPUser,
			app.Config.SMTPPassword,
			app.Config.MailFrom,
		)
	}

	app.AccountsService = &accounts.Service{
		Users:  app.UsersRepo,
		OTP:    accounts.NewCacheOTPStore(app.Config.OTPTTL),
		Mailer: mailer,
	}
	app.FormsService = forms.NewService(app.FormsRepo)
	app.SubmissionsService = submissions.NewService(app.FormsRepo, app.SubmissionsRepo, app.Store)

	var parser jdparse.Parser = placeholderParser{}
	if strings.TrimSpace(app.Config.GeminiAPIKey) != "" {
		gemini, err := jdparse.NewGeminiParser(app.Config.GeminiAPIKey, app.Config.GeminiModel)
		if err != nil {
			log.Printf("bootstrap: gemini parser unavailable: %v", err)
		} else {
			parser = gemini
		}
	}

	app.AccountsHandler = accounts.NewHandler(app.AccountsService)
	app.FormsHandler = forms.NewHandler(app.FormsService)
	app.SubmissionsHandler = submissions.NewHandler(app.SubmissionsService)
	app.ReviewHandler = review.NewHandler(app.FormsService, app.SubmissionsRepo)
	app.JDParseHandler = jdparse.NewHandler(parser)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type placeholderParser struct{}

func (placeholderParser) Parse(ctx context.Context, jobDescription string) (forms.Extraction, error) {
	_ = ctx
	_ = jobDescription
	return forms.Extraction{}, fmt.Errorf("%w: GEMINI_API_KEY not configured", jdparse.ErrParseFailed)
}
