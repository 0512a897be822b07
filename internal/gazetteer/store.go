// Package gazetteer builds and caches per-organization lookup tables of
// known brand names, partitioned into own brands and competitors, with a
// static global company list as the final tier.
package gazetteer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/llumos/brand-detector/internal/data"
	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/logger"
	"github.com/llumos/brand-detector/internal/normalize"
)

// productFamilySuffixes are combined with every own-brand name so mentions
// like "Acme CRM" resolve to the org's own product rather than a competitor.
var productFamilySuffixes = []string{
	"crm", "platform", "suite", "hub", "software", "app", "cloud",
	"marketing", "analytics", "ai",
}

// DataSource provides the organization inputs consumed during gazetteer
// initialization. Implemented by the Postgres repositories.
type DataSource interface {
	// BrandCatalog returns the org's explicit brand catalog rows.
	BrandCatalog(ctx context.Context, orgID string) ([]domain.BrandRecord, error)
	// Organization returns the org record, or nil when unknown.
	Organization(ctx context.Context, orgID string) (*domain.Organization, error)
	// ResponsesSince returns historical AI-response rows newer than since.
	ResponsesSince(ctx context.Context, orgID string, since time.Time) ([]domain.ResponseRow, error)
}

// BuildRecorder receives gazetteer build metrics. Implemented by the
// telemetry provider; may be nil.
type BuildRecorder interface {
	RecordGazetteerBuild(cacheSize int)
}

// Config holds gazetteer bootstrapping settings.
type Config struct {
	// HistoryWindow is the rolling window of historical responses consulted.
	HistoryWindow time.Duration
	// HistoryMinCount is the minimum recurrence for a historical term.
	HistoryMinCount int
}

// Store caches one built gazetteer per organization. The cache is
// read-mostly; concurrent first-time initializations for the same org are
// idempotent (last writer wins over an identical build).
type Store struct {
	source   DataSource
	filter   *filter.Filter
	cfg      Config
	recorder BuildRecorder
	logger   logger.Logger

	mu    sync.RWMutex
	cache map[string]*OrgGazetteer
}

// NewStore creates a gazetteer store. rec may be nil to disable build metrics.
func NewStore(source DataSource, f *filter.Filter, cfg Config, rec BuildRecorder, log logger.Logger) *Store {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = 30 * 24 * time.Hour
	}
	if cfg.HistoryMinCount <= 0 {
		cfg.HistoryMinCount = 2
	}
	return &Store{
		source:   source,
		filter:   f,
		cfg:      cfg,
		recorder: rec,
		logger:   log,
		cache:    make(map[string]*OrgGazetteer),
	}
}

// Gazetteer returns the org's gazetteer, building it on first use.
// A missing or partial org context degrades to a smaller gazetteer rather
// than an error; only data-source failures on the catalog itself propagate.
func (s *Store) Gazetteer(ctx context.Context, orgID string) (*OrgGazetteer, error) {
	s.mu.RLock()
	g, ok := s.cache[orgID]
	s.mu.RUnlock()
	if ok {
		return g, nil
	}

	g, err := s.build(ctx, orgID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Another goroutine may have built the same gazetteer concurrently;
	// duplicate work is wasteful but not unsafe.
	if existing, ok := s.cache[orgID]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	s.cache[orgID] = g
	s.mu.Unlock()

	if s.recorder != nil {
		s.recorder.RecordGazetteerBuild(s.CachedOrgs())
	}

	return g, nil
}

// Invalidate drops the cached gazetteer so the next detection rebuilds it.
func (s *Store) Invalidate(orgID string) {
	s.mu.Lock()
	delete(s.cache, orgID)
	s.mu.Unlock()
}

// CachedOrgs returns the number of organizations with a built gazetteer.
func (s *Store) CachedOrgs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// build assembles the gazetteer in precedence order; the first source to
// claim a normalized name wins.
func (s *Store) build(ctx context.Context, orgID string) (*OrgGazetteer, error) {
	start := time.Now()
	g := newOrgGazetteer(orgID)

	// 1. Explicit brand catalog, including spelling variants.
	catalog, err := s.source.BrandCatalog(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("load brand catalog for org %s: %w", orgID, err)
	}
	for _, rec := range catalog {
		g.add(rec.Name, domain.SourceCatalog, rec.IsOrgBrand)
		for _, v := range rec.Variants {
			g.add(v, domain.SourceCatalogVariant, rec.IsOrgBrand)
		}
	}

	// 2. Org record name and domain-derived own-brand guess.
	org, err := s.source.Organization(ctx, orgID)
	if err != nil {
		s.logger.Warn("organization record unavailable, continuing without it",
			logger.String("org_id", orgID),
			logger.Error(err))
	}
	if org != nil {
		if org.Name != "" {
			g.add(org.Name, domain.SourceCatalog, true)
		}
		if guess := brandGuessFromOrgDomain(org.Domain); guess != "" {
			g.add(guess, domain.SourceCatalog, true)
		}

		// 3. Seed competitor list from org metadata.
		for _, seed := range org.Metadata.CompetitorsSeed {
			g.add(seed, domain.SourceSeed, false)
		}
	}

	// 4. Recurring terms from the historical response window, excluding
	// own brands and anything the blacklist would reject.
	s.addHistoricalTerms(ctx, orgID, g)

	// Own-brand alias synthesis happens after all own brands are known.
	g.generateOwnBrandAliases()

	s.logger.Info("gazetteer built",
		logger.String("org_id", orgID),
		logger.Int("entries", len(g.entries)),
		logger.Int("own_brand_aliases", len(g.ownAliases)),
		logger.Duration("elapsed", time.Since(start)))

	return g, nil
}

func (s *Store) addHistoricalTerms(ctx context.Context, orgID string, g *OrgGazetteer) {
	since := time.Now().Add(-s.cfg.HistoryWindow)
	rows, err := s.source.ResponsesSince(ctx, orgID, since)
	if err != nil {
		s.logger.Warn("historical responses unavailable, skipping tier",
			logger.String("org_id", orgID),
			logger.Error(err))
		return
	}

	counts := make(map[string]string) // normalized -> raw
	tally := make(map[string]int)
	for _, row := range rows {
		for _, name := range row.Competitors {
			n := normalize.Name(name)
			if n == "" {
				continue
			}
			if _, ok := counts[n]; !ok {
				counts[n] = name
			}
			tally[n]++
		}
	}

	for n, count := range tally {
		if count < s.cfg.HistoryMinCount {
			continue
		}
		if g.isOwnBrand(n) {
			continue
		}
		if s.filter != nil && s.filter.ValidateTerm(n) != filter.RejectNone {
			continue
		}
		g.add(counts[n], domain.SourceHistorical, false)
	}
}

// brandGuessFromOrgDomain derives an own-brand alias from the org's domain,
// e.g. "www.hubspot.com" -> "Hubspot".
func brandGuessFromOrgDomain(orgDomain string) string {
	d := strings.ToLower(strings.TrimSpace(orgDomain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	if i := strings.IndexByte(d, '.'); i >= 0 {
		d = d[:i]
	}
	if d == "" {
		return ""
	}
	return strings.ToUpper(d[:1]) + d[1:]
}

// Empty returns a gazetteer with no account-level entries. The global list
// and NER fallback still function against it; this is the degraded mode used
// when an organization's context cannot be loaded.
func Empty(orgID string) *OrgGazetteer {
	return newOrgGazetteer(orgID)
}

// OrgGazetteer is one organization's built gazetteer. Read-only after build.
type OrgGazetteer struct {
	orgID      string
	entries    map[string]domain.GazetteerEntry
	ownAliases map[string]struct{}
}

func newOrgGazetteer(orgID string) *OrgGazetteer {
	return &OrgGazetteer{
		orgID:      orgID,
		entries:    make(map[string]domain.GazetteerEntry),
		ownAliases: make(map[string]struct{}),
	}
}

// add inserts an entry unless the normalized name is already claimed.
func (g *OrgGazetteer) add(name string, source domain.GazetteerSource, ownBrand bool) {
	n := normalize.Name(name)
	if n == "" {
		return
	}
	if _, exists := g.entries[n]; exists {
		return
	}
	g.entries[n] = domain.GazetteerEntry{
		Name:           strings.TrimSpace(name),
		NormalizedName: n,
		Source:         source,
		IsOwnBrand:     ownBrand,
	}
	if ownBrand {
		g.ownAliases[n] = struct{}{}
	}
}

// generateOwnBrandAliases synthesizes product-family combinations for every
// own-brand name so "Acme CRM" counts as a mention of "Acme".
func (g *OrgGazetteer) generateOwnBrandAliases() {
	base := make([]string, 0, len(g.ownAliases))
	for alias := range g.ownAliases {
		base = append(base, alias)
	}
	for _, alias := range base {
		for _, suffix := range productFamilySuffixes {
			g.ownAliases[alias+" "+suffix] = struct{}{}
		}
	}
}

// LookupAccount returns the account-level entry for a normalized name.
func (g *OrgGazetteer) LookupAccount(normalizedName string) (domain.GazetteerEntry, bool) {
	e, ok := g.entries[normalizedName]
	return e, ok
}

// LookupGlobal consults the static global company list.
func (g *OrgGazetteer) LookupGlobal(normalizedName string) (domain.GazetteerEntry, bool) {
	info, ok := data.LookupGlobalCompany(normalizedName)
	if !ok {
		return domain.GazetteerEntry{}, false
	}
	return domain.GazetteerEntry{
		Name:           info.Canonical,
		NormalizedName: normalize.Name(info.Canonical),
		Source:         domain.SourceGlobalList,
		IsOwnBrand:     false,
	}, true
}

// IsOwnBrand reports whether the normalized name is an own-brand alias,
// either exactly or by containing every word of a shorter alias.
func (g *OrgGazetteer) IsOwnBrand(normalizedName string) bool {
	if g.isOwnBrand(normalizedName) {
		return true
	}
	for alias := range g.ownAliases {
		if normalize.ContainsAllWords(normalizedName, alias) {
			return true
		}
	}
	return false
}

func (g *OrgGazetteer) isOwnBrand(normalizedName string) bool {
	_, ok := g.ownAliases[normalizedName]
	return ok
}

// Entries returns a copy of the account-level entries.
func (g *OrgGazetteer) Entries() []domain.GazetteerEntry {
	out := make([]domain.GazetteerEntry, 0, len(g.entries))
	for _, e := range g.entries {
		out = append(out, e)
	}
	return out
}

// OwnAliasCount returns the number of own-brand aliases, synthesized ones
// included.
func (g *OrgGazetteer) OwnAliasCount() int {
	return len(g.ownAliases)
}
