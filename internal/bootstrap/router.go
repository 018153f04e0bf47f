package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tmportfolio/admin-gateway/internal/analytics"
	httpapi "github.com/tmportfolio/admin-gateway/internal/api/http"
	"github.com/tmportfolio/admin-gateway/internal/api/http/middleware"
	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/dashboard"
	"github.com/tmportfolio/admin-gateway/internal/messages"
	"github.com/tmportfolio/admin-gateway/internal/panels"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
	"github.com/tmportfolio/admin-gateway/internal/settings"
	"github.com/tmportfolio/admin-gateway/internal/web"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Client         *portfolio.Client
	Sessions       *auth.Store
	CookieName     string
	CookieTTLSecs  int
	AllowedOrigins []string
}

// BuildRouter wires every screen onto one gin engine. Everything except
// /login and the health probes sits behind the session guard.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	if len(dep.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = dep.AllowedOrigins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	r.SetHTMLTemplate(web.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Sessions, dep.Client)
	healthHandler.RegisterRoutes(r)

	auth.New(dep.Sessions, dep.Client, dep.CookieName, dep.CookieTTLSecs).Register(r)

	protected := r.Group("/")
	protected.Use(auth.RequireSession(dep.Sessions, dep.CookieName))

	dashboard.New(dep.Client).Register(protected)
	panels.RegisterAll(protected, dep.Client, dep.Sessions)
	messages.New(dep.Client).Register(protected)
	analytics.New(dep.Client).Register(protected)
	settings.New(dep.Client).Register(protected)

	return r
}
