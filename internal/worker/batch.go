package worker

import (
	"context"
	"fmt"
	"os"

	"github.com/alpha-code-labs/Agri-sevak/internal/extract"
	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// TextScanner is the interface the batch processor scans files with
type TextScanner interface {
	ScanText(text, crop string) []model.Match
}

// ScanJob scans one evidence file for banned chemicals
type ScanJob struct {
	Path    string
	Crop    string
	HTML    bool // Reduce the file to visible text before scanning
	Scanner TextScanner
	Limiter *Limiter
}

// Execute executes the scan job
func (j *ScanJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx); err != nil {
		return &FileResult{Path: j.Path, Err: err}
	}

	raw, err := os.ReadFile(j.Path)
	if err != nil {
		return &FileResult{Path: j.Path, Err: fmt.Errorf("read file: %w", err)}
	}

	text := string(raw)
	if j.HTML {
		visible, err := extract.VisibleText(text)
		if err != nil {
			return &FileResult{Path: j.Path, Err: fmt.Errorf("parse html: %w", err)}
		}
		text = visible
	}

	return &FileResult{Path: j.Path, Matches: j.Scanner.ScanText(text, j.Crop)}
}

// FileResult is the outcome of scanning one file
type FileResult struct {
	Path    string        `json:"path"`
	Matches []model.Match `json:"matches,omitempty"`
	Error   string        `json:"error,omitempty"` // String form of Err for serialized output
	Err     error         `json:"-"`
}

// GetError returns the error from the scan, if any
func (r *FileResult) GetError() error {
	return r.Err
}

// BatchProcessor scans multiple evidence files concurrently
type BatchProcessor struct {
	scanner     TextScanner
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(scanner TextScanner, concurrency int, limiter *Limiter) *BatchProcessor {
	return &BatchProcessor{
		scanner:     scanner,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessFiles scans the given files for one crop with bounded
// concurrency. Results come back in completion order, one per file.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, crop string, paths []string, htmlMode bool) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, path := range paths {
		pool.Submit(&ScanJob{
			Path:    path,
			Crop:    crop,
			HTML:    htmlMode,
			Scanner: b.scanner,
			Limiter: b.limiter,
		})
	}

	results := pool.Wait()

	out := make([]*FileResult, 0, len(results))
	for _, r := range results {
		fr := r.(*FileResult)
		if fr.Err != nil {
			fr.Error = fr.Err.Error()
		}
		out = append(out, fr)
	}
	return out
}
