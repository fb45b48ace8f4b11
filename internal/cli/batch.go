package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpha-code-labs/Agri-sevak/internal/worker"
)

var (
	batchCrop    string
	batchWorkers int
	batchRate    float64
	batchBurst   int
	batchJSON    bool
	batchHTML    bool
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Scan a directory of evidence files in parallel",
	Long: `Batch scans every regular file under a directory for chemicals banned
for the given crop, using a concurrent worker pool. Use --rate to cap
scan throughput when results feed a shared downstream.

Example:
  agrishield batch ./evidence --crop cotton
  agrishield batch ./evidence --crop brinjal --concurrency 8 --rate 50 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchCrop, "crop", "", "crop the advisories are for (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 0, "max scans per second (0 = unthrottled)")
	batchCmd.Flags().IntVar(&batchBurst, "burst", 0, "rate limiter burst size")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit results as JSON")
	batchCmd.Flags().BoolVar(&batchHTML, "html", false, "treat inputs as HTML and scan visible text only")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	_ = batchCmd.MarkFlagRequired("crop")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg := loadConfig()
	if !cmd.Flags().Changed("timeout") && cfg.Batch.Timeout > 0 {
		batchTimeout = cfg.Batch.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if batchWorkers > 0 {
		cfg.Batch.Workers = batchWorkers
	}
	if batchRate > 0 {
		cfg.Batch.RatePerSecond = batchRate
	}
	if batchBurst > 0 {
		cfg.Batch.Burst = batchBurst
	}

	paths, err := collectFiles(dir)
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files found under %s", dir)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning %d files for crop %q with %d workers\n",
			len(paths), batchCrop, cfg.Batch.Workers)
	}

	f := newFilter(cfg)
	limiter := worker.NewLimiter(cfg.Batch.RatePerSecond, cfg.Batch.Burst)
	processor := worker.NewBatchProcessor(f, cfg.Batch.Workers, limiter)

	results := processor.ProcessFiles(ctx, batchCrop, paths, batchHTML)

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	flagged, failed := 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("✗ %s: %v\n", r.Path, r.Err)
		case len(r.Matches) > 0:
			flagged++
			fmt.Printf("⚠ %s:\n", r.Path)
			for _, m := range r.Matches {
				fmt.Printf("    - %s: %s\n", m.Name, m.Reason)
			}
		}
	}

	fmt.Printf("\nScanned %d files: %d flagged, %d failed\n", len(results), flagged, failed)
	return nil
}

// collectFiles lists regular files under dir, recursively
func collectFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
