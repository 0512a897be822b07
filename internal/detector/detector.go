// Package detector orchestrates the competitor detection pipeline: candidate
// extraction, blacklist filtering, gazetteer classification, NER fallback,
// and ranking.
package detector

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/extractor"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/logger"
	"github.com/llumos/brand-detector/internal/ner"
	"github.com/llumos/brand-detector/internal/normalize"
	"github.com/llumos/brand-detector/internal/telemetry"
)

// SourceNER marks competitors confirmed by the LLM fallback rather than a
// gazetteer tier.
const SourceNER domain.GazetteerSource = "ner"

// Config holds detection pipeline settings.
type Config struct {
	// MaxResults caps the ranked competitor list.
	MaxResults int
	// MaxNERCandidates bounds the unresolved-candidate list sent per NER call.
	MaxNERCandidates int
}

// Detector classifies AI-response text into own-brand mentions, competitors,
// and rejected terms for one organization at a time. Safe for concurrent use;
// per-call state is request-scoped.
type Detector struct {
	filter    *filter.Filter
	store     *gazetteer.Store
	resolver  ner.EntityResolver
	telemetry *telemetry.Provider
	logger    logger.Logger
	cfg       Config
}

// New creates a detector. resolver may be nil to disable the NER fallback;
// tp may be nil to disable telemetry.
func New(f *filter.Filter, store *gazetteer.Store, resolver ner.EntityResolver, tp *telemetry.Provider, log logger.Logger, cfg Config) *Detector {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 15
	}
	if cfg.MaxNERCandidates <= 0 {
		cfg.MaxNERCandidates = 10
	}
	return &Detector{
		filter:    f,
		store:     store,
		resolver:  resolver,
		telemetry: tp,
		logger:    log,
		cfg:       cfg,
	}
}

// Detect classifies one text for an organization. It never fails on degraded
// inputs: a missing org context yields an empty account gazetteer, a failed
// NER call yields zero additional matches, and empty text yields an empty
// result.
func (d *Detector) Detect(ctx context.Context, orgID, text string) (*domain.DetectionResult, error) {
	start := time.Now()

	if d.telemetry != nil {
		var span trace.Span
		ctx, span = d.telemetry.StartSpan(ctx, "detector.Detect",
			attribute.String("org_id", orgID),
			attribute.Int("text_len", len(text)))
		defer span.End()
	}

	gaz, err := d.store.Gazetteer(ctx, orgID)
	if err != nil {
		d.logger.Warn("gazetteer unavailable, proceeding with global list only",
			logger.String("org_id", orgID),
			logger.Error(err))
		gaz = gazetteer.Empty(orgID)
	}

	candidates := extractor.ExtractCandidates(text)

	result := &domain.DetectionResult{
		OrgID:            orgID,
		Competitors:      []domain.Candidate{},
		OwnBrandMentions: []domain.Candidate{},
		RejectedTerms:    []string{},
		DetectedAt:       time.Now(),
	}
	result.Metadata.TotalCandidates = len(candidates)

	var unresolved []domain.Candidate
	for _, c := range candidates {
		switch d.classifyCandidate(gaz, c, result) {
		case dispositionUnresolved:
			unresolved = append(unresolved, c)
		default:
		}
	}

	d.resolveViaNER(ctx, gaz, text, unresolved, result)

	result.Competitors = Rank(result.Competitors, d.cfg.MaxResults)
	result.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()

	if d.telemetry != nil {
		d.telemetry.RecordDetection(orgID, time.Since(start), len(candidates), len(result.Competitors))
	}

	d.logger.Debug("detection complete",
		logger.String("org_id", orgID),
		logger.Int("candidates", len(candidates)),
		logger.Int("competitors", len(result.Competitors)),
		logger.Int("own_brand_mentions", len(result.OwnBrandMentions)),
		logger.Int64("processing_time_ms", result.Metadata.ProcessingTimeMs))

	return result, nil
}

type disposition int

const (
	dispositionRejected disposition = iota
	dispositionOwnBrand
	dispositionCompetitor
	dispositionUnresolved
)

// classifyCandidate applies the tiers in order: validity, own-brand alias,
// account gazetteer, global gazetteer. Unresolved candidates go to the NER
// fallback.
func (d *Detector) classifyCandidate(gaz *gazetteer.OrgGazetteer, c domain.Candidate, result *domain.DetectionResult) disposition {
	if reason := d.filter.ValidateTerm(c.RawName); reason != filter.RejectNone {
		result.RejectedTerms = append(result.RejectedTerms, c.RawName)
		return dispositionRejected
	}

	if gaz.IsOwnBrand(c.NormalizedName) {
		result.OwnBrandMentions = append(result.OwnBrandMentions, c)
		return dispositionOwnBrand
	}

	if entry, ok := gaz.LookupAccount(c.NormalizedName); ok {
		if entry.IsOwnBrand {
			result.OwnBrandMentions = append(result.OwnBrandMentions, c)
			return dispositionOwnBrand
		}
		c.RawName = entry.Name
		c.Source = entry.Source
		result.Competitors = append(result.Competitors, c)
		result.Metadata.GazetteerMatches++
		return dispositionCompetitor
	}

	if entry, ok := gaz.LookupGlobal(c.NormalizedName); ok {
		c.RawName = entry.Name
		c.Source = entry.Source
		result.Competitors = append(result.Competitors, c)
		result.Metadata.GlobalMatches++
		return dispositionCompetitor
	}

	return dispositionUnresolved
}

// resolveViaNER sends a bounded batch of unresolved candidates to the
// external resolver. Failure is strictly additive: it is logged, counted,
// and produces zero matches.
func (d *Detector) resolveViaNER(ctx context.Context, gaz *gazetteer.OrgGazetteer, text string, unresolved []domain.Candidate, result *domain.DetectionResult) {
	if d.resolver == nil || len(unresolved) == 0 {
		return
	}

	if len(unresolved) > d.cfg.MaxNERCandidates {
		d.logger.Debug("unresolved candidates exceed NER cap, truncating",
			logger.String("org_id", result.OrgID),
			logger.Int("unresolved", len(unresolved)),
			logger.Int("cap", d.cfg.MaxNERCandidates))
		unresolved = unresolved[:d.cfg.MaxNERCandidates]
	}

	names := make([]string, len(unresolved))
	byNormalized := make(map[string]domain.Candidate, len(unresolved))
	for i, c := range unresolved {
		names[i] = c.RawName
		byNormalized[c.NormalizedName] = c
	}

	callStart := time.Now()
	confirmed, err := d.resolver.ResolveOrganizations(ctx, text, names)
	if d.telemetry != nil {
		d.telemetry.RecordNERCall(time.Since(callStart), errorClass(err))
	}
	if err != nil {
		d.logger.Warn("NER fallback failed, continuing without it",
			logger.String("org_id", result.OrgID),
			logger.Error(err))
		return
	}

	for _, name := range confirmed {
		c, ok := byNormalized[normalize.Name(name)]
		if !ok {
			// Resolver returned a name outside the candidate list.
			continue
		}
		if gaz.IsOwnBrand(c.NormalizedName) {
			continue
		}
		c.Source = SourceNER
		result.Competitors = append(result.Competitors, c)
		result.Metadata.NERMatches++
	}
}

func errorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ner.ErrTimeout):
		return "timeout"
	case errors.Is(err, ner.ErrAuthFailure):
		return "auth"
	case errors.Is(err, ner.ErrMalformedResponse):
		return "malformed"
	default:
		return "unavailable"
	}
}
