package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"idealab/internal/catalog"
	"idealab/internal/engine"
	"idealab/internal/storage"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Idea Lab API running"})
}

func (s *Server) handleDiagnostics(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if s.diag != nil {
		resp["database"] = "✅ Available"
		resp["database_url"] = "✅ Set"
		resp["database_name"] = s.diag.Name()
		names, err := s.diag.CollectionNames(c.Request.Context())
		if err != nil {
			resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
			resp["connection_status"] = "Connected"
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Catalog ----

func (s *Server) handleListIdeas(c *gin.Context) {
	ideas := s.svc.Catalog().ListIdeas(catalog.IdeaFilter{
		Type:       c.Query("type"),
		Difficulty: c.Query("difficulty"),
		Tag:        c.Query("tag"),
		Query:      c.Query("q"),
	})
	c.JSON(http.StatusOK, ideas)
}

func (s *Server) handleGetIdea(c *gin.Context) {
	idea := s.svc.Catalog().GetIdea(c.Param("id"))
	if idea == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}
	c.JSON(http.StatusOK, idea)
}

func (s *Server) handleListPaths(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Catalog().ListPaths())
}

func (s *Server) handleGetPath(c *gin.Context) {
	path := s.svc.Catalog().GetPath(c.Param("id"))
	if path == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Path not found"})
		return
	}
	c.JSON(http.StatusOK, path)
}

func (s *Server) handleListWorlds(c *gin.Context) {
	worlds := s.svc.Catalog().ListWorlds(catalog.WorldFilter{
		Tag:   c.Query("tag"),
		Query: c.Query("q"),
	})
	c.JSON(http.StatusOK, worlds)
}

func (s *Server) handleGetWorld(c *gin.Context) {
	world := s.svc.Catalog().GetWorld(c.Param("id"))
	if world == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "World not found"})
		return
	}
	c.JSON(http.StatusOK, world)
}

// ---- Plans ----

type createPlanRequest struct {
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	LinkedIdeaID *string        `json:"linkedIdeaId"`
	LinkedPathID *string        `json:"linkedPathId"`
	RobuxGoal    *int           `json:"robuxGoal"`
	Notes        string         `json:"notes"`
	Tasks        []storage.Task `json:"tasks"`
}

// updatePlanRequest has no tasks field: task-list edits must go through
// PATCH /plans/:id/tasks so derived fields stay consistent.
type updatePlanRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	LinkedIdeaID *string `json:"linkedIdeaId"`
	LinkedPathID *string `json:"linkedPathId"`
	RobuxGoal    *int    `json:"robuxGoal"`
	Notes        *string `json:"notes"`
	StreakCount  *int    `json:"streakCount"`
}

type tasksPatchRequest struct {
	Tasks *[]storage.Task `json:"tasks"`
}

type notesPatchRequest struct {
	Notes *string `json:"notes"`
}

func (s *Server) handleListPlans(c *gin.Context) {
	plans, err := s.svc.ListPlans(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	plan, err := s.svc.CreatePlan(c.Request.Context(), engine.CreatePlanInput{
		Name:         req.Name,
		Type:         req.Type,
		LinkedIdeaID: req.LinkedIdeaID,
		LinkedPathID: req.LinkedPathID,
		RobuxGoal:    req.RobuxGoal,
		Notes:        req.Notes,
		Tasks:        req.Tasks,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (s *Server) handleGetPlan(c *gin.Context) {
	plan, err := s.svc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleReplacePlan(c *gin.Context) {
	var req updatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	plan, err := s.svc.ReplacePlan(c.Request.Context(), c.Param("id"), engine.UpdatePlanInput{
		Name:         req.Name,
		Type:         req.Type,
		LinkedIdeaID: req.LinkedIdeaID,
		LinkedPathID: req.LinkedPathID,
		RobuxGoal:    req.RobuxGoal,
		Notes:        req.Notes,
		StreakCount:  req.StreakCount,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handlePatchTasks(c *gin.Context) {
	var req tasksPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Tasks == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tasks is required"})
		return
	}
	plan, err := s.svc.PatchTasks(c.Request.Context(), c.Param("id"), *req.Tasks)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handlePatchNotes(c *gin.Context) {
	var req notesPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "notes is required"})
		return
	}
	plan, err := s.svc.PatchNotes(c.Request.Context(), c.Param("id"), *req.Notes)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(c *gin.Context) {
	if err := s.svc.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeError translates domain outcomes to status codes. Internal faults
// are truncated so store internals never reach the client verbatim.
func (s *Server) writeError(c *gin.Context, err error) {
	var verr engine.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
	case errors.Is(err, storage.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	case errors.Is(err, engine.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), 80)})
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
