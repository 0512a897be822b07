//nolint:testpackage // Testing internal processor requires same package access
package processor

import (
	"context"
	"testing"
	"time"

	"github.com/llumos/brand-detector/internal/detector"
	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/logger"
)

type emptySource struct{}

func (emptySource) BrandCatalog(_ context.Context, _ string) ([]domain.BrandRecord, error) {
	return nil, nil
}

func (emptySource) Organization(_ context.Context, _ string) (*domain.Organization, error) {
	return nil, nil
}

func (emptySource) ResponsesSince(_ context.Context, _ string, _ time.Time) ([]domain.ResponseRow, error) {
	return nil, nil
}

func newTestBatchProcessor(concurrency int) *BatchProcessor {
	log := logger.NewNop()
	f := filter.New()
	store := gazetteer.NewStore(emptySource{}, f, gazetteer.Config{}, nil, log)
	d := detector.New(f, store, nil, nil, log, detector.Config{})
	return NewBatchProcessor(d, concurrency, log)
}

func TestBatchProcessor_Process(t *testing.T) {
	b := newTestBatchProcessor(3)

	jobs := []DetectionJob{
		{OrgID: "org-1", Text: "HubSpot is widely used."},
		{OrgID: "org-1", Text: "Salesforce dominates enterprise."},
		{OrgID: "org-2", Text: "Zoho is a budget option."},
	}

	results := b.Process(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Fatalf("results: got %d, want %d", len(results), len(jobs))
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("job for %s failed: %v", r.Job.OrgID, r.Error)
		}
		if r.Result == nil {
			t.Errorf("job for %s has no result", r.Job.OrgID)
			continue
		}
		if len(r.Result.Competitors) != 1 {
			t.Errorf("job %q: competitors %v", r.Job.Text, r.Result.CompetitorNames())
		}
	}
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	b := newTestBatchProcessor(2)

	results := b.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestBatchProcessor_DefaultConcurrency(t *testing.T) {
	b := newTestBatchProcessor(0)
	if b.Concurrency() != defaultConcurrency {
		t.Errorf("concurrency: got %d, want %d", b.Concurrency(), defaultConcurrency)
	}
}

func TestRateLimiter_AllowAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())

	if !rl.Allow() {
		t.Fatal("first call within burst must be allowed")
	}
	if rl.Allow() {
		t.Error("second immediate call must exceed the burst")
	}
}

func TestRateLimiter_WaitHonorsContext(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())
	rl.Allow() // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err == nil {
		t.Error("expected wait to fail once the context expires")
	}
}
