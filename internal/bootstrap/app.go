package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"cvbuilder/cv/render"
	"cvbuilder/internal/documents"
	"cvbuilder/internal/generate"
	"cvbuilder/internal/photos"
	"cvbuilder/internal/shared/config"
	"cvbuilder/internal/shared/server"
	"cvbuilder/internal/shared/storage/db"
	"cvbuilder/internal/shared/telemetry"
	"cvbuilder/internal/ui"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	DocumentsRepo    documents.Repo
	DocumentsService *documents.Service
	GenerateService  *generate.Service
	Renderer         *render.Renderer
	PhotoStore       *photos.Store
	DocumentsHandler *documents.Handler
	GenerateHandler  *generate.Handler
	PhotosHandler    *photos.Handler
	UIHandler        *ui.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		UI:        app.UIHandler,
		Documents: app.DocumentsHandler,
		Generate:  app.GenerateHandler,
		Photos:    app.PhotosHandler,
	})

	return app, nil
}

// buildDB connects to Postgres when DATABASE_URL is set. The flat-file
// store is the default mode, so an empty URL is not an error.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_fallback", map[string]any{
				"error":     err.Error(),
				"data_file": cfg.DataFile,
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.migrate_fallback", map[string]any{
				"error":     err.Error(),
				"data_file": cfg.DataFile,
			})
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var repo documents.Repo
	if app.DB != nil {
		repo = &documents.PGRepo{DB: app.DB}
	} else {
		repo = &documents.FileRepo{Path: app.Config.DataFile}
	}

	renderer := render.New(render.Options{
		DefaultPhoto: app.Config.DefaultPhoto,
		FontFile:     app.Config.FontFile,
	})

	docSvc := &documents.Service{Repo: repo}

	app.DocumentsRepo = repo
	app.Renderer = renderer
	app.DocumentsService = docSvc
	app.GenerateService = &generate.Service{Documents: docSvc, Renderer: renderer}
	app.PhotoStore = &photos.Store{Dir: app.Config.PhotosDir}
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.GenerateHandler = generate.NewHandler(app.GenerateService)
	app.PhotosHandler = photos.NewHandler(app.PhotoStore)
	app.UIHandler = ui.NewHandler()
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
