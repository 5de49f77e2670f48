package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "staffing-backend/internal/auth"
	"staffing-backend/internal/consultants"
	"staffing-backend/internal/documents"
	"staffing-backend/internal/managers"
	"staffing-backend/internal/practices"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	CORSAllowOrigin   []string
	DocumentHandler   *documents.Handler
	ConsultantHandler *consultants.Handler
	PracticeHandler   *practices.Handler
	ManagerHandler    *managers.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ConsultantHandler != nil {
		deps.ConsultantHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.PracticeHandler != nil {
		deps.PracticeHandler.RegisterRoutes(api)
	}
	if deps.ManagerHandler != nil {
		deps.ManagerHandler.RegisterRoutes(api)
	}

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
