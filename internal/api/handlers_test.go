//nolint:testpackage // Testing internal api requires same package access
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llumos/brand-detector/internal/detector"
	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/filter"
	"github.com/llumos/brand-detector/internal/gazetteer"
	"github.com/llumos/brand-detector/internal/logger"
	"github.com/llumos/brand-detector/internal/processor"
)

type fakeSource struct {
	catalog []domain.BrandRecord
}

func (f *fakeSource) BrandCatalog(_ context.Context, _ string) ([]domain.BrandRecord, error) {
	return f.catalog, nil
}

func (f *fakeSource) Organization(_ context.Context, _ string) (*domain.Organization, error) {
	return nil, errors.New("no org record")
}

func (f *fakeSource) ResponsesSince(_ context.Context, _ string, _ time.Time) ([]domain.ResponseRow, error) {
	return nil, nil
}

type fakeSaver struct {
	saved int
	err   error
}

func (f *fakeSaver) Save(_ context.Context, _ *domain.DetectionResult) error {
	f.saved++
	return f.err
}

type fakeIndexer struct {
	indexed   int
	bulkCalls int
	bulkDocs  int
	err       error
}

func (f *fakeIndexer) IndexDetection(_ context.Context, _ *domain.DetectionResult) error {
	f.indexed++
	return f.err
}

func (f *fakeIndexer) BulkIndexDetections(_ context.Context, results []*domain.DetectionResult) error {
	f.bulkCalls++
	f.bulkDocs += len(results)
	return f.err
}

func newTestRouter(t *testing.T, saver DetectionSaver, indexer DetectionIndexer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	f := filter.New()
	store := gazetteer.NewStore(&fakeSource{
		catalog: []domain.BrandRecord{{Name: "Acme", IsOrgBrand: true}},
	}, f, gazetteer.Config{}, nil, log)
	d := detector.New(f, store, nil, nil, log, detector.Config{})
	batch := processor.NewBatchProcessor(d, 2, log)

	handler := NewHandler(d, batch, store, saver, indexer, nil, log)

	router := gin.New()
	SetupRoutes(router, handler, nil)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDetectEndpoint(t *testing.T) {
	saver := &fakeSaver{}
	indexer := &fakeIndexer{}
	router := newTestRouter(t, saver, indexer)

	w := doJSON(router, http.MethodPost, "/api/v1/detect", DetectRequest{
		OrgID: "org-1",
		Text:  "Acme is better than HubSpot and Salesforce.",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var resp DetectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OrgID != "org-1" {
		t.Errorf("org_id: got %q", resp.OrgID)
	}
	if len(resp.Competitors) != 2 {
		t.Errorf("competitors: got %v", resp.Competitors)
	}
	if len(resp.OwnBrandMentions) != 1 {
		t.Errorf("own-brand mentions: got %v", resp.OwnBrandMentions)
	}

	if saver.saved != 1 {
		t.Errorf("saved: got %d, want 1", saver.saved)
	}
	if indexer.indexed != 1 {
		t.Errorf("indexed: got %d, want 1", indexer.indexed)
	}
}

func TestDetectEndpoint_ValidationErrors(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	tests := []struct {
		name string
		body any
	}{
		{"missing org_id", map[string]string{"text": "hello"}},
		{"missing text", map[string]string{"org_id": "org-1"}},
		{"empty body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/detect", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", w.Code)
			}
		})
	}
}

func TestDetectEndpoint_PersistenceFailureIsNonCritical(t *testing.T) {
	saver := &fakeSaver{err: errors.New("db down")}
	indexer := &fakeIndexer{err: errors.New("es down")}
	router := newTestRouter(t, saver, indexer)

	w := doJSON(router, http.MethodPost, "/api/v1/detect", DetectRequest{
		OrgID: "org-1",
		Text:  "Salesforce leads the market.",
	})

	if w.Code != http.StatusOK {
		t.Errorf("persistence failure must not fail the request: got %d", w.Code)
	}
}

func TestDetectBatchEndpoint(t *testing.T) {
	saver := &fakeSaver{}
	router := newTestRouter(t, saver, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/detect/batch", BatchDetectRequest{
		Items: []processor.DetectionJob{
			{OrgID: "org-1", Text: "HubSpot is popular."},
			{OrgID: "org-1", Text: "Zoho is cheaper."},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var resp BatchDetectResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || resp.Success != 2 || resp.Failed != 0 {
		t.Errorf("summary: %+v", resp)
	}
	if saver.saved != 2 {
		t.Errorf("saved: got %d, want 2", saver.saved)
	}
}

func TestDetectBatchEndpoint_UsesBulkIndexing(t *testing.T) {
	indexer := &fakeIndexer{}
	router := newTestRouter(t, nil, indexer)

	w := doJSON(router, http.MethodPost, "/api/v1/detect/batch", BatchDetectRequest{
		Items: []processor.DetectionJob{
			{OrgID: "org-1", Text: "HubSpot is popular."},
			{OrgID: "org-1", Text: "Zoho is cheaper."},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	if indexer.bulkCalls != 1 || indexer.bulkDocs != 2 {
		t.Errorf("bulk indexing: calls=%d docs=%d, want 1/2", indexer.bulkCalls, indexer.bulkDocs)
	}
	if indexer.indexed != 0 {
		t.Errorf("batch must not index item by item, got %d single calls", indexer.indexed)
	}
}

func TestDetectBatchEndpoint_EmptyBatchRejected(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/detect/batch", BatchDetectRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestGazetteerEndpoints(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/orgs/org-1/gazetteer", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var resp GazetteerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OrgID != "org-1" || resp.EntryCount == 0 {
		t.Errorf("response: %+v", resp)
	}

	w = doJSON(router, http.MethodPost, "/api/v1/orgs/org-1/gazetteer/refresh", nil)
	if w.Code != http.StatusOK {
		t.Errorf("refresh status: got %d", w.Code)
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := doJSON(router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health: got %d", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Errorf("ready without db configured: got %d", w.Code)
	}
}
