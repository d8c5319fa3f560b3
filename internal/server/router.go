package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindmate/internal/platform/logger"
)

// RouteRegistrar is implemented by every module's HTTP handler.
type RouteRegistrar interface {
	Register(r gin.IRouter)
}

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Proxy       gin.HandlerFunc
	Modules     []RouteRegistrar
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(cfg.Log))
	if len(cfg.CORSOrigins) > 0 {
		router.Use(CORS(cfg.CORSOrigins))
	}

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Proxy != nil {
		router.Any("/api/*path", cfg.Proxy)
	}
	v1 := router.Group("/v1")
	for _, m := range cfg.Modules {
		m.Register(v1)
	}
	return router
}
