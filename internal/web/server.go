package web

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"idealab/internal/engine"
)

// Diagnostics probes the live document store for GET /test. Nil when no
// store is configured.
type Diagnostics interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

type Server struct {
	svc    *engine.Service
	diag   Diagnostics
	router *gin.Engine
}

func NewServer(svc *engine.Service, diag Diagnostics, corsOrigin string) *Server {
	router := gin.Default()

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if corsOrigin == "" || corsOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{corsOrigin}
	}
	router.Use(cors.New(corsCfg))

	s := &Server{
		svc:    svc,
		diag:   diag,
		router: router,
	}

	router.GET("/", s.handleRoot)
	router.GET("/test", s.handleDiagnostics)

	api := router.Group("/api")
	{
		api.GET("/ideas", s.handleListIdeas)
		api.GET("/ideas/:id", s.handleGetIdea)
		api.GET("/paths", s.handleListPaths)
		api.GET("/paths/:id", s.handleGetPath)
		// Legacy alias kept for older clients.
		api.GET("/earning-paths", s.handleListPaths)
		api.GET("/earning-paths/:id", s.handleGetPath)
		api.GET("/worlds", s.handleListWorlds)
		api.GET("/worlds/:id", s.handleGetWorld)

		api.GET("/plans", s.handleListPlans)
		api.POST("/plans", s.handleCreatePlan)
		api.GET("/plans/:id", s.handleGetPlan)
		api.PUT("/plans/:id", s.handleReplacePlan)
		api.PATCH("/plans/:id/tasks", s.handlePatchTasks)
		api.PATCH("/plans/:id/notes", s.handlePatchNotes)
		api.DELETE("/plans/:id", s.handleDeletePlan)
	}

	return s
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
