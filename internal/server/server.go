// Package server exposes the dashboard read API over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meridianfx/deskd/internal/cache"
	"github.com/meridianfx/deskd/internal/config"
	"github.com/meridianfx/deskd/internal/dataapi"
	"github.com/meridianfx/deskd/internal/risk"
)

// Server is the deskd HTTP API server.
type Server struct {
	router  *gin.Engine
	logger  *zap.Logger
	cfg     config.ServerConfig
	data    *dataapi.Client
	refdata *cache.ReferenceData
	risk    *risk.Service

	httpServer *http.Server
}

// NewServer creates the API server with injected collaborators.
func NewServer(
	cfg config.ServerConfig,
	logger *zap.Logger,
	data *dataapi.Client,
	refdata *cache.ReferenceData,
	riskSvc *risk.Service,
) *Server {
	s := &Server{
		logger:  logger,
		cfg:     cfg,
		data:    data,
		refdata: refdata,
		risk:    riskSvc,
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/loans", s.handleLoans)
		v1.GET("/loans/export", s.handleLoansExport)
		v1.GET("/transfers", s.handleTransfers)
		v1.GET("/transfers/export", s.handleTransfersExport)
		v1.GET("/quotes", s.handleQuotes)
		v1.GET("/quotes/export", s.handleQuotesExport)
		v1.GET("/positions/risk", s.handlePositionRisk)
	}

	s.router = router
	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving and blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr()))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
