package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/documents"
	"cvbuilder/internal/generate"
	"cvbuilder/internal/photos"
	"cvbuilder/internal/shared/config"
	"cvbuilder/internal/shared/metrics"
	"cvbuilder/internal/shared/server/middleware"
	"cvbuilder/internal/shared/server/respond"
	"cvbuilder/internal/ui"
)

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config    config.Config
	UI        *ui.Handler
	Documents *documents.Handler
	Generate  *generate.Handler
	Photos    *photos.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	root := r.Group("")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	root.GET("/metrics", metrics.Handler())
	deps.UI.RegisterRoutes(root)
	deps.Documents.RegisterRoutes(root)
	deps.Generate.RegisterRoutes(root)
	deps.Photos.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
