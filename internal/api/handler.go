package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"order-analytics/internal/ingest"
	"order-analytics/internal/models"
	"order-analytics/internal/service"
	"order-analytics/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	analysisService *service.AnalysisService
	maxUploadBytes  int64
}

// NewHandler creates a new HTTP handler
func NewHandler(analysisService *service.AnalysisService, maxUploadBytes int64) *Handler {
	return &Handler{
		analysisService: analysisService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyses", h.createAnalysis)
		v1.GET("/analyses/:id", h.getAnalysis)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// createAnalysis ingests an uploaded dataset and runs the full pipeline.
// The whole run fails on the first schema, parse or data error; there is no
// partial result.
func (h *Handler) createAnalysis(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.DatasetRejectedTotal.WithLabelValues("missing_file").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing dataset file",
			"details": err.Error(),
		})
		return
	}

	if fileHeader.Size > h.maxUploadBytes {
		util.DatasetRejectedTotal.WithLabelValues("too_large").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "dataset file too large",
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to open upload",
			"details": err.Error(),
		})
		return
	}
	defer f.Close()

	lines, ingestErr := ingestUpload(fileHeader.Filename, f)
	if ingestErr != nil {
		status, name := classifyIngestError(ingestErr)
		util.DatasetRejectedTotal.WithLabelValues(name).Inc()
		c.JSON(status, gin.H{
			"error":   name,
			"details": ingestErr.Error(),
		})
		return
	}

	report, err := h.analysisService.Analyze(c.Request.Context(), lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "analysis failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getAnalysis returns a previously computed report by run ID
func (h *Handler) getAnalysis(c *gin.Context) {
	runID := c.Param("id")

	report, ok := h.analysisService.GetReport(runID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "analysis not found",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

func ingestUpload(filename string, f io.Reader) ([]models.OrderLine, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ingest.ReadXLSX(f)
	}
	return ingest.ReadCSV(f)
}

func classifyIngestError(err error) (int, string) {
	var schemaErr *ingest.SchemaError
	var parseErr *ingest.ParseError
	var dataErr *ingest.DataError

	switch {
	case errors.As(err, &schemaErr):
		return http.StatusBadRequest, "schema_error"
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, "parse_error"
	case errors.As(err, &dataErr):
		return http.StatusUnprocessableEntity, "data_error"
	default:
		return http.StatusInternalServerError, "ingest_error"
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
