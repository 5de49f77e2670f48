// Package bootstrap wires configuration, storage, services and the HTTP
// router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "staffing-backend/internal/auth"
	"staffing-backend/internal/consultants"
	"staffing-backend/internal/documents"
	"staffing-backend/internal/analysis"
	"staffing-backend/internal/extract"
	"staffing-backend/internal/managers"
	"staffing-backend/internal/practices"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/server"
	"staffing-backend/internal/shared/storage/db"
	"staffing-backend/internal/shared/storage/files"
	"staffing-backend/internal/shared/telemetry"
)

// App holds the application's shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Files  *files.Store

	DocumentsRepo   documents.DocumentsRepo
	ConsultantsRepo consultants.Repo
	PracticesRepo   practices.Repo
	ManagersRepo    managers.Repo

	DocumentsService   *documents.Service
	ConsultantsService *consultants.Service
	PracticesService   *practices.Service
	ManagersService    *managers.Service
	GoogleAuth         *googleauth.GoogleService
}

// Build prepares the application's dependencies and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := files.New(cfg.UploadDir)
	if err := store.EnsureRoot(); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}

	app := &App{Config: cfg, DB: sqlDB, Files: store}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		CORSAllowOrigin:   cfg.CORSAllowOrigin,
		DocumentHandler:   documents.NewHandler(app.DocumentsService),
		ConsultantHandler: &consultants.Handler{Service: app.ConsultantsService},
		PracticeHandler:   &practices.Handler{Service: app.PracticesService},
		ManagerHandler:    &managers.Handler{Service: app.ManagersService},
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "database connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.ConsultantsRepo = &consultants.PGRepo{DB: app.DB}
		app.PracticesRepo = &practices.PGRepo{DB: app.DB}
		app.ManagersRepo = &managers.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.ConsultantsRepo = consultants.NewMemoryRepo()
		app.PracticesRepo = practices.NewMemoryRepo()
		app.ManagersRepo = managers.NewMemoryRepo()
	}

	app.ConsultantsService = &consultants.Service{Repo: app.ConsultantsRepo}
	app.PracticesService = &practices.Service{Repo: app.PracticesRepo}
	app.ManagersService = &managers.Service{Repo: app.ManagersRepo}

	docSvc, err := documents.NewService(
		app.Files,
		documents.ExtractorFunc(extract.File),
		documents.AnalyzerFunc(analysis.AnalyzeContent),
		app.DocumentsRepo,
		app.ConsultantsService,
	)
	if err != nil {
		// All five collaborators are built above; a nil here is a programming error.
		panic(err)
	}
	app.DocumentsService = docSvc

	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.ManagersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
