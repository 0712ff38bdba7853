package app

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Karimk94/translator-core/internal/modules/generate"
	"github.com/Karimk94/translator-core/internal/modules/health"
	"github.com/Karimk94/translator-core/internal/pkg/response"
)

//go:embed web/index.html
var indexHTML []byte

func (a *App) registerRoutes(genSvc *generate.Service) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	root := r.Group("/")
	health.RegisterRoutes(root, a.cfg.Ollama.Model)
	generate.NewHandler(genSvc).RegisterRoutes(root)
}
