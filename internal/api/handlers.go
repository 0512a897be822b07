// Package api exposes the detection pipeline over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llumos/brand-detector/internal/detector"
	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/logger"
	"github.com/llumos/brand-detector/internal/processor"
)

// DetectionSaver persists detection results to Postgres.
type DetectionSaver interface {
	Save(ctx context.Context, result *domain.DetectionResult) error
}

// DetectionIndexer indexes detection results into Elasticsearch. Batch
// detections go through the bulk endpoint in one request.
type DetectionIndexer interface {
	IndexDetection(ctx context.Context, result *domain.DetectionResult) error
	BulkIndexDetections(ctx context.Context, results []*domain.DetectionResult) error
}

// Pinger reports backend liveness. Satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the detection API.
type Handler struct {
	detector       *detector.Detector
	batchProcessor *processor.BatchProcessor
	store          *gazetteer.Store
	saver          DetectionSaver
	indexer        DetectionIndexer
	db             Pinger
	logger         logger.Logger
}

// NewHandler creates a new API handler. saver, indexer, and db may be nil;
// the corresponding persistence or readiness checks are skipped.
func NewHandler(
	d *detector.Detector,
	batchProcessor *processor.BatchProcessor,
	store *gazetteer.Store,
	saver DetectionSaver,
	indexer DetectionIndexer,
	db Pinger,
	log logger.Logger,
) *Handler {
	return &Handler{
		detector:       d,
		batchProcessor: batchProcessor,
		store:          store,
		saver:          saver,
		indexer:        indexer,
		db:             db,
		logger:         log,
	}
}

// DetectRequest represents a single detection request.
type DetectRequest struct {
	OrgID string `json:"org_id" binding:"required"`
	Text  string `json:"text"  binding:"required"`
}

// BatchDetectRequest represents a batch detection request.
type BatchDetectRequest struct {
	Items []processor.DetectionJob `json:"items" binding:"required,min=1,max=100,dive"`
}

// Detect handles POST /api/v1/detect
func (h *Handler) Detect(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid detection request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.detector.Detect(c.Request.Context(), req.OrgID, req.Text)
	if err != nil {
		h.logger.Error("detection failed",
			logger.String("org_id", req.OrgID),
			logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.persist(c.Request.Context(), result)

	c.JSON(http.StatusOK, toDetectResponse(result))
}

// DetectBatch handles POST /api/v1/detect/batch
func (h *Handler) DetectBatch(c *gin.Context) {
	var req BatchDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid batch detection request", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.batchProcessor.Process(c.Request.Context(), req.Items)

	succeeded := make([]*domain.DetectionResult, 0, len(results))
	for _, r := range results {
		if r.Error == nil && r.Result != nil {
			h.save(c.Request.Context(), r.Result)
			succeeded = append(succeeded, r.Result)
		}
	}
	if h.indexer != nil && len(succeeded) > 0 {
		if err := h.indexer.BulkIndexDetections(c.Request.Context(), succeeded); err != nil {
			h.logger.Warn("failed to bulk index detections",
				logger.Int("count", len(succeeded)),
				logger.Error(err))
		}
	}

	c.JSON(http.StatusOK, toBatchResponse(results))
}

// GetGazetteer handles GET /api/v1/orgs/:org_id/gazetteer
func (h *Handler) GetGazetteer(c *gin.Context) {
	orgID := c.Param("org_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "org_id is required"})
		return
	}

	gaz, err := h.store.Gazetteer(c.Request.Context(), orgID)
	if err != nil {
		h.logger.Error("failed to build gazetteer",
			logger.String("org_id", orgID),
			logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build gazetteer"})
		return
	}

	c.JSON(http.StatusOK, toGazetteerResponse(orgID, gaz))
}

// RefreshGazetteer handles POST /api/v1/orgs/:org_id/gazetteer/refresh
func (h *Handler) RefreshGazetteer(c *gin.Context) {
	orgID := c.Param("org_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "org_id is required"})
		return
	}

	h.store.Invalidate(orgID)
	gaz, err := h.store.Gazetteer(c.Request.Context(), orgID)
	if err != nil {
		h.logger.Error("failed to rebuild gazetteer",
			logger.String("org_id", orgID),
			logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rebuild gazetteer"})
		return
	}

	h.logger.Info("gazetteer refreshed", logger.String("org_id", orgID))
	c.JSON(http.StatusOK, toGazetteerResponse(orgID, gaz))
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Warn("readiness check failed", logger.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": "database unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// persist writes one result to Postgres and Elasticsearch. Both are
// best-effort: failures are logged and the API response is unaffected.
func (h *Handler) persist(ctx context.Context, result *domain.DetectionResult) {
	h.save(ctx, result)
	if h.indexer != nil {
		if err := h.indexer.IndexDetection(ctx, result); err != nil {
			h.logger.Warn("failed to index detection",
				logger.String("org_id", result.OrgID),
				logger.Error(err))
		}
	}
}

func (h *Handler) save(ctx context.Context, result *domain.DetectionResult) {
	if h.saver == nil {
		return
	}
	if err := h.saver.Save(ctx, result); err != nil {
		h.logger.Warn("failed to save detection",
			logger.String("org_id", result.OrgID),
			logger.Error(err))
	}
}
