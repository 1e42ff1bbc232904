package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/catalog"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/domain"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/scoring"
	"github.com/cypheroneinc-oss/cb-bot-server-sub000/internal/service"
)

// DiagnosisHandler translates HTTP requests into engine calls. All
// algorithmic content lives in internal/scoring; this layer only shapes
// requests and maps errors to statuses.
type DiagnosisHandler struct {
	logger    *zap.Logger
	diagnoses *service.DiagnosisService
}

func NewDiagnosisHandler(logger *zap.Logger, diagnoses *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		logger:    logger,
		diagnoses: diagnoses,
	}
}

// GetQuestions handles GET /questions and returns the versioned dataset for
// the UI layer, along with the recognized cluster ids.
func (h *DiagnosisHandler) GetQuestions(c *gin.Context) {
	version := catalog.SupportedVersion
	if raw := c.Query("version"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "version must be an integer"})
			return
		}
		version = parsed
	}

	questions, err := catalog.Dataset(version)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedVersion) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unsupported question version"})
			return
		}
		h.logger.Error("load question dataset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":   version,
		"questions": questions,
		"clusters":  domain.Clusters,
	})
}

// PostDiagnosis handles POST /diagnosis.
func (h *DiagnosisHandler) PostDiagnosis(c *gin.Context) {
	var req struct {
		SessionID string          `json:"session_id" binding:"required"`
		Answers   []domain.Answer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid diagnosis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.diagnoses.Diagnose(c.Request.Context(), req.SessionID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidShape), errors.Is(err, service.ErrMissingSession):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts"})
		default:
			h.logger.Error("diagnosis failed", zap.Error(err), zap.String("session_id", req.SessionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not run diagnosis"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"diagnosis": record})
}

// GetDiagnosis handles GET /diagnosis/:id.
func (h *DiagnosisHandler) GetDiagnosis(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	record, err := h.diagnoses.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diagnosis not found"})
			return
		}
		h.logger.Error("get diagnosis failed", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch diagnosis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"diagnosis": record})
}
