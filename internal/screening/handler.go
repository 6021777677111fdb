package screening

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/shared/util"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Handler exposes the screening pipeline over HTTP.
type Handler struct {
	Pipeline       *Pipeline
	Repo           Repo
	MaxUploadBytes int64
}

// RegisterRoutes mounts the screening endpoints on the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, process ...gin.HandlerFunc) {
	rg.GET("/health", h.health)
	rg.GET("/job-roles", h.jobRoles)
	handlers := append(append([]gin.HandlerFunc{}, process...), h.process)
	rg.POST("/process", handlers...)
	rg.GET("/screenings", h.list)
	rg.GET("/screenings/:id", h.getByID)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":         "healthy",
		"message":        "Backend running",
		"pipeline_ready": h.Pipeline.Ready(),
	})
}

func (h *Handler) jobRoles(c *gin.Context) {
	respond.OK(c, gin.H{"roles": h.Pipeline.Roles})
}

func (h *Handler) process(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file uploaded")
		return
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file selected")
		return
	}
	if !isPDF(fileHeader) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF files are allowed")
		return
	}
	if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "File exceeds the maximum upload size")
		return
	}

	jobRole := strings.TrimSpace(c.PostForm("job_role"))
	if jobRole == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job role is required")
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid file name")
		return
	}

	data, err := readUpload(fileHeader, h.MaxUploadBytes)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Could not read the uploaded file")
		return
	}

	sub := Submission{
		FileName:          fileName,
		File:              data,
		JobRole:           jobRole,
		CandidateName:     strings.TrimSpace(c.PostForm("candidate_name")),
		CandidateEmail:    strings.TrimSpace(c.PostForm("candidate_email")),
		CandidateLinkedIn: strings.TrimSpace(c.PostForm("candidate_linkedin")),
	}

	result, err := h.Pipeline.Process(c.Request.Context(), sub)
	if err != nil {
		status, msg := HTTPStatus(err)
		respond.Error(c, status, "processing_error", msg)
		return
	}

	c.Set("screeningId", result.ID)
	c.Set("jobRole", result.JobRole)
	respond.OK(c, result)
}

func (h *Handler) list(c *gin.Context) {
	if h.Repo == nil {
		respond.Error(c, http.StatusNotImplemented, "not_configured", "Screening history is not configured")
		return
	}
	limit := parseIntParam(c.Query("limit"), defaultListLimit, 1, maxListLimit)
	offset := parseIntParam(c.Query("offset"), 0, 0, 1<<20)

	results, err := h.Repo.ListRecent(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not list screenings")
		return
	}
	respond.OK(c, gin.H{"screenings": results, "count": len(results)})
}

func (h *Handler) getByID(c *gin.Context) {
	if h.Repo == nil {
		respond.Error(c, http.StatusNotImplemented, "not_configured", "Screening history is not configured")
		return
	}
	result, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Screening not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "Could not load screening")
		return
	}
	respond.OK(c, result)
}

// isPDF accepts by extension or declared content type; the extractor is
// the real gatekeeper for file contents.
func isPDF(fh *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return true
	}
	ct := fh.Header.Get("Content-Type")
	return strings.EqualFold(strings.TrimSpace(strings.Split(ct, ";")[0]), "application/pdf")
}

func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if maxBytes > 0 {
		return io.ReadAll(io.LimitReader(f, maxBytes+1))
	}
	return io.ReadAll(f)
}

func parseIntParam(raw string, fallback, lo, hi int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
