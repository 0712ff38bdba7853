package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Karimk94/translator-core/internal/config"
	"github.com/Karimk94/translator-core/internal/middleware"
	"github.com/Karimk94/translator-core/internal/modules/generate"
	"github.com/Karimk94/translator-core/internal/modules/relay"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	logger *zap.Logger
}

// New initializes the application: middleware → relay client → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.WithRequestID())
	router.Use(middleware.Logger(logger))

	// Every origin on every route. A deliberate openness decision for this
	// deployment, not a security boundary: the endpoint carries no
	// credentials and serves no private data.
	corsConfig := cors.Config{
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		AllowOriginFunc: func(origin string) bool { return true },
	}
	router.Use(cors.New(corsConfig))

	relayClient := relay.NewClient(relay.Config{
		URL:   cfg.Ollama.URL,
		Model: cfg.Ollama.Model,
	}, logger)
	genSvc := generate.NewService(relayClient, logger)

	app := &App{cfg: cfg, router: router, logger: logger}
	app.registerRoutes(genSvc)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
