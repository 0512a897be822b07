package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llumos/brand-detector/internal/domain"
)

// DetectionRepository persists detection results. Persistence is
// non-critical for the detection API: callers log failures and still return
// the result.
type DetectionRepository struct {
	db *sqlx.DB
}

// NewDetectionRepository creates a new detection repository.
func NewDetectionRepository(db *sqlx.DB) *DetectionRepository {
	return &DetectionRepository{db: db}
}

// Save inserts one detection row with competitors and own-brand mentions as
// JSONB.
func (r *DetectionRepository) Save(ctx context.Context, result *domain.DetectionResult) error {
	competitorsJSON, err := json.Marshal(result.Competitors)
	if err != nil {
		return fmt.Errorf("failed to marshal competitors: %w", err)
	}
	brandsJSON, err := json.Marshal(result.OwnBrandMentions)
	if err != nil {
		return fmt.Errorf("failed to marshal own-brand mentions: %w", err)
	}

	query := `
		INSERT INTO detections (org_id, competitors_json, brands_json, total_candidates, ner_matches, processing_time_ms, detected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		result.OrgID,
		competitorsJSON,
		brandsJSON,
		result.Metadata.TotalCandidates,
		result.Metadata.NERMatches,
		result.Metadata.ProcessingTimeMs,
		result.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save detection: %w", err)
	}

	return nil
}
