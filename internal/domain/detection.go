package domain

import "time"

// PositionNotFound is the FirstPositionRatio sentinel for a candidate whose
// raw form could not be located in the source text.
const PositionNotFound = 1.0

// Candidate is a text span extracted by pattern matching that may or may not
// be a true brand mention. Candidates are ephemeral: they exist only within a
// single detection pass.
type Candidate struct {
	RawName        string `json:"raw_name"`
	NormalizedName string `json:"normalized_name"`
	// MentionCount is the total number of occurrences across all
	// extraction passes.
	MentionCount int `json:"mention_count"`
	// FirstPositionRatio is the character offset of the earliest occurrence
	// divided by the text length, in [0,1]. PositionNotFound when absent.
	FirstPositionRatio float64 `json:"first_position_ratio"`
	// Source records which tier resolved the candidate (catalog, global_list,
	// historical, seed). Empty for own-brand mentions and rejected terms.
	Source GazetteerSource `json:"source,omitempty"`
}

// DetectionMetadata summarizes how a detection pass resolved its candidates.
type DetectionMetadata struct {
	TotalCandidates  int   `json:"total_candidates"`
	GazetteerMatches int   `json:"gazetteer_matches"`
	GlobalMatches    int   `json:"global_matches"`
	NERMatches       int   `json:"ner_matches"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// DetectionResult is the output of classifying one AI-response text for an
// organization. Competitors, OwnBrandMentions, and RejectedTerms partition
// the candidate space by normalized name; a name never appears in more than
// one of the three.
type DetectionResult struct {
	OrgID            string            `json:"org_id"`
	Competitors      []Candidate       `json:"competitors"`
	OwnBrandMentions []Candidate       `json:"own_brand_mentions"`
	RejectedTerms    []string          `json:"rejected_terms"`
	Metadata         DetectionMetadata `json:"metadata"`
	DetectedAt       time.Time         `json:"detected_at"`
}

// CompetitorNames returns the canonical competitor names in rank order.
func (r *DetectionResult) CompetitorNames() []string {
	names := make([]string, 0, len(r.Competitors))
	for _, c := range r.Competitors {
		names = append(names, c.RawName)
	}
	return names
}

// OwnBrandNames returns the detected own-brand mention names.
func (r *DetectionResult) OwnBrandNames() []string {
	names := make([]string, 0, len(r.OwnBrandMentions))
	for _, c := range r.OwnBrandMentions {
		names = append(names, c.RawName)
	}
	return names
}
