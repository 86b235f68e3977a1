package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRunRoutes registers pipeline endpoints.
func RegisterRunRoutes(r *gin.Engine, s *Server) {
	g := r.Group("/api")
	g.POST("/run", s.handleRun)
	g.GET("/report", s.handleReport)
	g.GET("/stories", s.handleStories)
}

// handleRun executes one pipeline cycle synchronously and returns its report.
// Concurrent runs are rejected; the pipeline is a sequential batch job and
// the external providers are rate limited.
func (s *Server) handleRun(c *gin.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "a run is already in progress"})
		return
	}
	s.running = true
	s.mu.Unlock()

	report, err := s.runner.Run(c.Request.Context())

	s.mu.Lock()
	s.running = false
	if report != nil {
		s.last = report
	}
	s.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleReport returns the most recent run's report.
func (s *Server) handleReport(c *gin.Context) {
	s.mu.Lock()
	report := s.last
	s.mu.Unlock()

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run has completed yet"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleStories returns just the story results of the most recent run.
func (s *Server) handleStories(c *gin.Context) {
	s.mu.Lock()
	report := s.last
	s.mu.Unlock()

	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run has completed yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(report.Stories),
		"stories": report.Stories,
	})
}
