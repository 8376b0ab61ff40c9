package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/services"
)

type NotebookHandler struct {
	log               *logger.Logger
	submissionService services.SubmissionService
	galleryService    services.GalleryService
	reportService     services.ReportService
}

func NewNotebookHandler(
	log *logger.Logger,
	submissionService services.SubmissionService,
	galleryService services.GalleryService,
	reportService services.ReportService,
) *NotebookHandler {
	return &NotebookHandler{
		log:               log.With("handler", "NotebookHandler"),
		submissionService: submissionService,
		galleryService:    galleryService,
		reportService:     reportService,
	}
}

// POST /api/notebooks/submit
func (h *NotebookHandler) Submit(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	if err := h.submissionService.Submit(c.Request.Context(), req); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

// GET /api/notebooks
func (h *NotebookHandler) List(c *gin.Context) {
	RespondOK(c, h.galleryService.List(c.Request.Context()))
}

// GET /api/notebooks/search?q=
func (h *NotebookHandler) Search(c *gin.Context) {
	query := c.Query("q")
	RespondOK(c, h.galleryService.Search(c.Request.Context(), query))
}

type reportRequest struct {
	NotebookID uint   `json:"notebookId"`
	Reason     string `json:"reason"`
}

// POST /api/notebooks/report
func (h *NotebookHandler) Report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	if err := h.reportService.Report(c.Request.Context(), req.NotebookID, req.Reason); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
