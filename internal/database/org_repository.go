package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/llumos/brand-detector/internal/domain"
)

// OrgRepository loads organization context for gazetteer initialization.
// It implements gazetteer.DataSource.
type OrgRepository struct {
	db *sqlx.DB
}

// NewOrgRepository creates a new organization repository.
func NewOrgRepository(db *sqlx.DB) *OrgRepository {
	return &OrgRepository{db: db}
}

// BrandCatalog returns the org's explicit brand catalog rows, with recorded
// spelling variants.
func (r *OrgRepository) BrandCatalog(ctx context.Context, orgID string) ([]domain.BrandRecord, error) {
	query := `
		SELECT name, variants, is_org_brand
		FROM org_brands
		WHERE org_id = $1
		ORDER BY is_org_brand DESC, name
	`

	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query brand catalog: %w", err)
	}
	defer rows.Close()

	var records []domain.BrandRecord
	for rows.Next() {
		var rec domain.BrandRecord
		if err := rows.Scan(&rec.Name, pq.Array(&rec.Variants), &rec.IsOrgBrand); err != nil {
			return nil, fmt.Errorf("failed to scan brand record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brand catalog: %w", err)
	}

	return records, nil
}

// Organization returns the org record, or an error when unknown.
func (r *OrgRepository) Organization(ctx context.Context, orgID string) (*domain.Organization, error) {
	query := `
		SELECT id, name, domain, metadata
		FROM organizations
		WHERE id = $1
	`

	var org domain.Organization
	var metadataJSON []byte
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(
		&org.ID,
		&org.Name,
		&org.Domain,
		&metadataJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("organization not found: %s", orgID)
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &org.Metadata); err != nil {
			return nil, fmt.Errorf("failed to parse organization metadata: %w", err)
		}
	}

	return &org, nil
}

// ResponsesSince returns the org's historical AI-response rows newer than
// since, used for gazetteer bootstrapping.
func (r *OrgRepository) ResponsesSince(ctx context.Context, orgID string, since time.Time) ([]domain.ResponseRow, error) {
	query := `
		SELECT competitors, run_at
		FROM ai_responses
		WHERE org_id = $1 AND run_at >= $2 AND competitors IS NOT NULL
		ORDER BY run_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query historical responses: %w", err)
	}
	defer rows.Close()

	var results []domain.ResponseRow
	for rows.Next() {
		var row domain.ResponseRow
		if err := rows.Scan(pq.Array(&row.Competitors), &row.RunAt); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return results, nil
}
