// Package storage indexes detection results into Elasticsearch for the
// dashboard's search and trend views.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/llumos/brand-detector/internal/domain"
)

// ElasticsearchStorage indexes detection documents. Indexing is best-effort;
// the detection API succeeds even when it fails.
type ElasticsearchStorage struct {
	client *es.Client
	index  string
}

// NewElasticsearchStorage creates a new Elasticsearch storage instance
// writing to the given index.
func NewElasticsearchStorage(client *es.Client, index string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client: client,
		index:  index,
	}
}

// detectionDocument is the indexed shape of a detection result.
type detectionDocument struct {
	OrgID            string             `json:"org_id"`
	Competitors      []domain.Candidate `json:"competitors"`
	OwnBrandMentions []domain.Candidate `json:"own_brand_mentions"`
	CompetitorNames  []string           `json:"competitor_names"`
	TotalCandidates  int                `json:"total_candidates"`
	GazetteerMatches int                `json:"gazetteer_matches"`
	GlobalMatches    int                `json:"global_matches"`
	NERMatches       int                `json:"ner_matches"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
	DetectedAt       time.Time          `json:"detected_at"`
}

// IndexDetection indexes a single detection result.
func (s *ElasticsearchStorage) IndexDetection(ctx context.Context, result *domain.DetectionResult) error {
	doc := detectionDocument{
		OrgID:            result.OrgID,
		Competitors:      result.Competitors,
		OwnBrandMentions: result.OwnBrandMentions,
		CompetitorNames:  result.CompetitorNames(),
		TotalCandidates:  result.Metadata.TotalCandidates,
		GazetteerMatches: result.Metadata.GazetteerMatches,
		GlobalMatches:    result.Metadata.GlobalMatches,
		NERMatches:       result.Metadata.NERMatches,
		ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
		DetectedAt:       result.DetectedAt,
	}

	docBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(docBytes),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// BulkIndexDetections indexes multiple detection results in one request.
func (s *ElasticsearchStorage) BulkIndexDetections(ctx context.Context, results []*domain.DetectionResult) error {
	if len(results) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, result := range results {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": s.index,
			},
		}
		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}

		doc := detectionDocument{
			OrgID:            result.OrgID,
			Competitors:      result.Competitors,
			OwnBrandMentions: result.OwnBrandMentions,
			CompetitorNames:  result.CompetitorNames(),
			TotalCandidates:  result.Metadata.TotalCandidates,
			GazetteerMatches: result.Metadata.GazetteerMatches,
			GlobalMatches:    result.Metadata.GlobalMatches,
			NERMatches:       result.Metadata.NERMatches,
			ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
			DetectedAt:       result.DetectedAt,
		}
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing error: %s", res.String())
	}

	return nil
}

// TestConnection tests the connection to Elasticsearch.
func (s *ElasticsearchStorage) TestConnection(ctx context.Context) error {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}

	return nil
}
