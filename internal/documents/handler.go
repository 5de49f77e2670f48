package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/shared/server/respond"
	"staffing-backend/internal/shared/storage/files"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/consultants/:id/documents", h.upload)
	rg.GET("/consultants/:id/documents", h.list)
	rg.GET("/consultants/:id/documents/latest-cv", h.latestCV)
	rg.GET("/documents/:id", h.get)
	rg.PATCH("/documents/:id", h.rename)
	rg.DELETE("/documents/:id", h.remove)
	rg.POST("/documents/:id/reanalyze", h.reanalyze)
	rg.GET("/documents/:id/analysis", h.analysisView)
	rg.GET("/documents/:id/report", h.report)
}

func (h *Handler) upload(c *gin.Context) {
	consultantID := c.Param("id")
	c.Set("consultantId", consultantID)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	docType := DocType(c.PostForm("type"))
	description := c.PostForm("description")

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	result, err := h.Svc.Upload(c.Request.Context(), consultantID, UploadInput{
		FileName:    fileHeader.Filename,
		DocType:     docType,
		Description: description,
		Body:        file,
	})
	if err != nil {
		h.writeError(c, err, "failed to upload document")
		return
	}

	c.Set("documentId", result.Document.ID)
	if result.Warning != "" {
		c.Set("softWarning", result.Warning)
	}
	respond.JSON(c, http.StatusCreated, toResponse(result.Document, result.Warning))
}

func (h *Handler) list(c *gin.Context) {
	consultantID := c.Param("id")
	c.Set("consultantId", consultantID)

	docs, err := h.Svc.List(c.Request.Context(), consultantID)
	if err != nil {
		h.writeError(c, err, "failed to list documents")
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc, ""))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) latestCV(c *gin.Context) {
	consultantID := c.Param("id")
	c.Set("consultantId", consultantID)

	doc, err := h.Svc.LatestCV(c.Request.Context(), consultantID)
	if err != nil {
		h.writeError(c, err, "failed to fetch latest CV")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(doc, ""))
}

func (h *Handler) get(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	doc, err := h.Svc.Get(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to fetch document")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(doc, ""))
}

type renameRequest struct {
	FileName    string  `json:"fileName"`
	Description *string `json:"description"`
}

func (h *Handler) rename(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Rename(c.Request.Context(), documentID, req.FileName, req.Description)
	if err != nil {
		h.writeError(c, err, "failed to rename document")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(doc, ""))
}

func (h *Handler) remove(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	warning, err := h.Svc.Delete(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to delete document")
		return
	}
	if warning != "" {
		c.Set("softWarning", warning)
	}
	respond.JSON(c, http.StatusOK, gin.H{"deleted": true, "warning": warning})
}

func (h *Handler) reanalyze(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	result, err := h.Svc.Reanalyze(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to reanalyze document")
		return
	}
	if result.Warning != "" {
		c.Set("softWarning", result.Warning)
	}
	respond.JSON(c, http.StatusOK, toResponse(result.Document, result.Warning))
}

func (h *Handler) analysisView(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	result, err := h.Svc.Analysis(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to fetch analysis")
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) report(c *gin.Context) {
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	markdown, err := h.Svc.Report(c.Request.Context(), documentID)
	if err != nil {
		h.writeError(c, err, "failed to build report")
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUnsupportedFileType):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrConsultantNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "consultant not found", nil)
	case errors.Is(err, ErrNoAnalysis):
		respond.Error(c, http.StatusNotFound, "no_analysis", "no analysis available for this document", nil)
	case errors.Is(err, ErrFileMissing):
		respond.Error(c, http.StatusConflict, "file_missing", err.Error(), nil)
	case errors.Is(err, files.ErrStorageUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "storage_unavailable", "upload storage is unavailable", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
