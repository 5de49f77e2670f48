package consultants

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/shared/server/respond"
)

// Handler exposes consultant endpoints.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the consultant routes on the provided router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/consultants", h.create)
	rg.GET("/consultants", h.list)
	rg.GET("/consultants/:id", h.get)
	rg.PUT("/consultants/:id", h.update)
	rg.DELETE("/consultants/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req ConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	consultant, err := h.Service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(consultant))
}

func (h *Handler) list(c *gin.Context) {
	consultants, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]ConsultantResponse, 0, len(consultants))
	for _, consultant := range consultants {
		out = append(out, toResponse(consultant))
	}
	respond.OK(c, gin.H{"consultants": out})
}

func (h *Handler) get(c *gin.Context) {
	consultant, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(consultant))
}

func (h *Handler) update(c *gin.Context) {
	var req ConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}

	consultant, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(consultant))
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
		respond.Error(c, http.StatusNotFound, "not_found", "consultant not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
