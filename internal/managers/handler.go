package managers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/shared/server/respond"
)

// ManagerRequest is the payload for creating or updating a manager.
type ManagerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ManagerResponse is the API shape of a manager.
type ManagerResponse struct {
	ManagerID string    `json:"managerId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(m Manager) ManagerResponse {
	return ManagerResponse{
		ManagerID: m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// Handler exposes manager endpoints.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts the manager routes on the provided router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/managers", h.create)
	rg.GET("/managers", h.list)
	rg.GET("/managers/:id", h.get)
	rg.PUT("/managers/:id", h.update)
	rg.DELETE("/managers/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var req ManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	manager, err := h.Service.Create(c.Request.Context(), CreateInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(manager))
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]ManagerResponse, 0, len(list))
	for _, manager := range list {
		out = append(out, toResponse(manager))
	}
	respond.OK(c, gin.H{"managers": out})
}

func (h *Handler) get(c *gin.Context) {
	manager, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(manager))
}

func (h *Handler) update(c *gin.Context) {
	var req ManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	manager, err := h.Service.Update(c.Request.Context(), c.Param("id"), CreateInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, toResponse(manager))
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
		respond.Error(c, http.StatusNotFound, "not_found", "manager not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}
