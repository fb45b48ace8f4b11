package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpha-code-labs/Agri-sevak/internal/dataset"
	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [crop]",
	Short: "List the resolved rule set for a crop, or dataset stats",
	Long: `With a crop argument, list prints every chemical forbidden for that
crop as JSON, one finding per chemical with its reason and category.
Without arguments, it prints per-category chemical counts for the
loaded dataset.

Example:
  agrishield list cotton
  agrishield list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if len(args) == 0 {
		return printDatasetStats(cfg)
	}

	f := newFilter(cfg)
	findings := f.BannedForCrop(args[0])

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

func printDatasetStats(cfg *model.Config) error {
	logger := newLogger(cfg)
	data := dataset.NewStore(cfg.Data.Path, logger).Load()

	if data.IsEmpty() {
		fmt.Println("Dataset is empty or could not be loaded")
		return nil
	}

	names := model.SectionNames()
	total := 0
	for i, sec := range data.Sections() {
		fmt.Printf("%-24s %d\n", names[i], len(sec.Chemicals))
		total += len(sec.Chemicals)
	}
	fmt.Printf("%-24s %d\n", "total", total)

	return nil
}
