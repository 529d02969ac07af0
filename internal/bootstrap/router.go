package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/rstracker/fete-cms/internal/api/http"
	"github.com/rstracker/fete-cms/internal/api/http/middleware"
)

// RouterDeps carries everything BuildRouter needs, so main stays the only
// place where components are constructed.
type RouterDeps struct {
	ServiceName string
	Version     string
	BackendURL  string
	Pages       *httpapi.PagesHandler
}

func BuildRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	health := httpapi.NewHealthHandler(deps.ServiceName, deps.Version, deps.BackendURL)
	health.RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware())
	deps.Pages.RegisterRoutes(api)

	return router
}
