// Package processor runs detections over batches of response texts using a
// worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/llumos/brand-detector/internal/detector"
	"github.com/llumos/brand-detector/internal/domain"
	"github.com/llumos/brand-detector/internal/logger"
)

const defaultConcurrency = 10

// DetectionJob is one batch item: a single AI response text to scan for an
// organization.
type DetectionJob struct {
	OrgID string `json:"org_id" binding:"required"`
	Text  string `json:"text"  binding:"required"`
}

// ProcessResult holds the outcome for a single job.
type ProcessResult struct {
	Job    DetectionJob            `json:"job"`
	Result *domain.DetectionResult `json:"result,omitempty"`
	Error  error                   `json:"-"`
}

// BatchProcessor fans a batch of jobs out to a fixed pool of workers.
type BatchProcessor struct {
	detector    *detector.Detector
	concurrency int
	logger      logger.Logger
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(d *detector.Detector, concurrency int, log logger.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		detector:    d,
		concurrency: concurrency,
		logger:      log,
	}
}

// Process runs detection for every job and returns one result per job.
// Individual job failures are recorded on the result, not returned.
func (b *BatchProcessor) Process(ctx context.Context, items []DetectionJob) []*ProcessResult {
	if len(items) == 0 {
		return []*ProcessResult{}
	}

	b.logger.Info("starting batch detection",
		logger.Int("batch_size", len(items)),
		logger.Int("concurrency", b.concurrency))

	startTime := time.Now()

	jobs := make(chan DetectionJob, len(items))
	results := make(chan *ProcessResult, len(items))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, jobs, results, &wg)
	}

	for _, job := range items {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)

	processResults := make([]*ProcessResult, 0, len(items))
	successCount := 0
	errorCount := 0
	for result := range results {
		if result.Error == nil {
			successCount++
		} else {
			errorCount++
		}
		processResults = append(processResults, result)
	}

	duration := time.Since(startTime)
	b.logger.Info("batch detection complete",
		logger.Int("total", len(items)),
		logger.Int("success", successCount),
		logger.Int("errors", errorCount),
		logger.Int64("duration_ms", duration.Milliseconds()))

	return processResults
}

func (b *BatchProcessor) worker(
	ctx context.Context,
	jobs <-chan DetectionJob,
	results chan<- *ProcessResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			results <- &ProcessResult{Job: job, Error: ctx.Err()}
			continue
		default:
		}

		result, err := b.detector.Detect(ctx, job.OrgID, job.Text)
		if err != nil {
			b.logger.Error("batch item failed",
				logger.String("org_id", job.OrgID),
				logger.Error(err))
			results <- &ProcessResult{Job: job, Error: err}
			continue
		}

		results <- &ProcessResult{Job: job, Result: result}
	}
}

// Concurrency returns the worker pool size.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
