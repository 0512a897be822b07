package api

import (
	"time"

	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/processor"
)

// DetectResponse is the API shape of one detection result.
type DetectResponse struct {
	OrgID            string                   `json:"org_id"`
	Competitors      []domain.Candidate       `json:"competitors"`
	OwnBrandMentions []domain.Candidate       `json:"own_brand_mentions"`
	RejectedTerms    []string                 `json:"rejected_terms"`
	Metadata         domain.DetectionMetadata `json:"metadata"`
	DetectedAt       time.Time                `json:"detected_at"`
}

// BatchItemResponse is the API shape of one batch item outcome.
type BatchItemResponse struct {
	OrgID  string          `json:"org_id"`
	Result *DetectResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchDetectResponse summarizes a batch run.
type BatchDetectResponse struct {
	Results []BatchItemResponse `json:"results"`
	Total   int                 `json:"total"`
	Success int                 `json:"success"`
	Failed  int                 `json:"failed"`
}

// GazetteerResponse describes an organization's built gazetteer.
type GazetteerResponse struct {
	OrgID           string                  `json:"org_id"`
	Entries         []domain.GazetteerEntry `json:"entries"`
	EntryCount      int                     `json:"entry_count"`
	OwnBrandAliases int                     `json:"own_brand_aliases"`
}

func toDetectResponse(result *domain.DetectionResult) *DetectResponse {
	return &DetectResponse{
		OrgID:            result.OrgID,
		Competitors:      result.Competitors,
		OwnBrandMentions: result.OwnBrandMentions,
		RejectedTerms:    result.RejectedTerms,
		Metadata:         result.Metadata,
		DetectedAt:       result.DetectedAt,
	}
}

func toBatchResponse(results []*processor.ProcessResult) BatchDetectResponse {
	resp := BatchDetectResponse{
		Results: make([]BatchItemResponse, 0, len(results)),
		Total:   len(results),
	}
	for _, r := range results {
		item := BatchItemResponse{OrgID: r.Job.OrgID}
		if r.Error != nil {
			item.Error = r.Error.Error()
			resp.Failed++
		} else {
			item.Result = toDetectResponse(r.Result)
			resp.Success++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

func toGazetteerResponse(orgID string, gaz *gazetteer.OrgGazetteer) GazetteerResponse {
	entries := gaz.Entries()
	return GazetteerResponse{
		OrgID:           orgID,
		Entries:         entries,
		EntryCount:      len(entries),
		OwnBrandAliases: gaz.OwnAliasCount(),
	}
}
