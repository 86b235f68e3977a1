package api

import (
	"context"
	"sync"

	"tunebot/pipeline"

	"github.com/gin-gonic/gin"
)

// Runner is the slice of pipeline.Runner the API needs.
type Runner interface {
	Run(ctx context.Context) (*pipeline.Report, error)
}

// Server exposes pipeline runs over HTTP and remembers the latest report.
type Server struct {
	runner Runner

	mu      sync.Mutex // serializes runs and guards lastReport
	running bool
	last    *pipeline.Report
}

// NewServer creates an API server around a configured runner.
func NewServer(runner Runner) *Server {
	return &Server{runner: runner}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterRunRoutes(r, s)
	RegisterHealthRoutes(r)
	return r
}
