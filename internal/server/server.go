// Package server exposes the dashboard over HTTP.
package server

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/config"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/importer"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/store"
)

// Server is the HTTP server.
type Server struct {
	router      *gin.Engine
	store       *store.Store
	coordinator *importer.Coordinator
}

// NewServer wires the store, the coordinator and the routes.
func NewServer(cfg *config.AppConfig, logger *logrus.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "hrkpi.db")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	s := &Server{
		router:      gin.Default(),
		store:       st,
		coordinator: importer.NewCoordinator(st, logger),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/files/:fileType", s.handleUpload)
		api.GET("/files", s.handleListFiles)
		api.GET("/kpis", s.handleListKPIs)
		api.GET("/ranges", s.handleListRanges)
		api.PUT("/ranges/:rangeType", s.handleSetRange)
		api.GET("/charts", s.handleGetCharts)
		api.POST("/reset", s.handleReset)
	}
}

// Run starts the server.
func (s *Server) Run(port int) error {
	return s.router.Run(fmt.Sprintf(":%d", port))
}

// Close releases the underlying store.
func (s *Server) Close() error {
	return s.store.Close()
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
