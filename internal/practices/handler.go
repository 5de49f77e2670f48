package practices

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/shared/server/respond"
)

// PracticeRequest is the payload for creating or updating a practice.
type PracticeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PracticeResponse is the API shape of a practice.
type PracticeResponse struct {
	PracticeID  string    `json:"practiceId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(p Practice) PracticeResponse {
	return PracticeResponse{
		PracticeID:  p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// Handler exposes practice endpoints.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the practice routes on the provided router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/practices", h.create)
	rg.GET("/practices", h.list)
	rg.GET("/practices/:id", h.get)
	rg.PUT("/practices/:id", h.update)
	rg.DELETE("/practices/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req PracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	practice, err := h.Service.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(practice))
}

func (h *Handler) list(c *gin.Context) {
	practices, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]PracticeResponse, 0, len(practices))
	for _, practice := range practices {
		out = append(out, toResponse(practice))
	}
	respond.OK(c, gin.H{"practices": out})
}

func (h *Handler) get(c *gin.Context) {
	practice, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(practice))
}

func (h *Handler) update(c *gin.Context) {
	var req PracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	practice, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(practice))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "practice not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
