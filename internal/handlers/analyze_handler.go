package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodbridge-service/internal/metrics"
	"foodbridge-service/internal/models"
	"foodbridge-service/internal/services"
)

const imageField = "image"

// Analyzer is implemented by services.FoodService
type Analyzer interface {
	DemoResponse() *models.AnalysisResponse
	Analyze(ctx context.Context, imageData []byte) (*models.AnalysisResponse, error)
}

// AnalyzeHandler handles food image analysis requests
type AnalyzeHandler struct {
	service Analyzer
	logger  *zap.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(service Analyzer, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

// Analyze classifies the multipart "image" upload.
// Missing configuration yields a 200 demo payload, not an error status.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, err := c.FormFile(imageField)
	if err != nil {
		message := "No image file uploaded."
		if hasEmptyFilePart(c) {
			message = "No file selected."
		}
		h.fail(c, http.StatusBadRequest, metrics.OutcomeBadRequest, message)
		return
	}

	if file.Filename == "" {
		h.fail(c, http.StatusBadRequest, metrics.OutcomeBadRequest, "No file selected.")
		return
	}

	if demo := h.service.DemoResponse(); demo != nil {
		metrics.AnalyzeRequestsTotal.WithLabelValues(metrics.OutcomeDemo).Inc()
		c.JSON(http.StatusOK, demo)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.unexpected(c, err)
		return
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		h.unexpected(c, err)
		return
	}

	resp, err := h.service.Analyze(c.Request.Context(), imageData)
	if err != nil {
		var invalidJSON *services.InvalidJSONError
		if errors.As(err, &invalidJSON) {
			h.logger.Warn("Invalid JSON from model", zap.String("response", invalidJSON.Raw))
			h.fail(c, http.StatusInternalServerError, metrics.OutcomeInvalidJSON, "AI response was not valid JSON.")
			return
		}
		h.unexpected(c, err)
		return
	}

	metrics.AnalyzeRequestsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, resp)
}

// hasEmptyFilePart reports whether the image field was sent without a
// filename. mime/multipart stores such parts as plain values.
func hasEmptyFilePart(c *gin.Context) bool {
	form := c.Request.MultipartForm
	if form == nil {
		return false
	}
	_, ok := form.Value[imageField]
	return ok
}

func (h *AnalyzeHandler) unexpected(c *gin.Context, err error) {
	h.logger.Error("Error in /analyze", zap.Error(err))
	h.fail(c, http.StatusInternalServerError, metrics.OutcomeError,
		fmt.Sprintf("Unexpected error during analysis: %v", err))
}

func (h *AnalyzeHandler) fail(c *gin.Context, status int, outcome, message string) {
	metrics.AnalyzeRequestsTotal.WithLabelValues(outcome).Inc()
	c.JSON(status, models.ErrorResponse{
		Error: message,
	})
}
