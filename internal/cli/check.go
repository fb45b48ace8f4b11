package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpha-code-labs/Agri-sevak/internal/extract"
)

var (
	checkCrop string
	checkJSON bool
	checkHTML bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Scan a text file for chemicals banned for a crop",
	Long: `Check scans the contents of a file for mentions of pesticides that
CIB&RC India bans or restricts for the given crop. Matching is
case-insensitive and alias-aware: brand names like Thiodan resolve to
their canonical chemical (Endosulfan).

Example:
  agrishield check advisory.txt --crop cotton
  agrishield check snippet.html --crop "paddy" --html --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkCrop, "crop", "", "crop the advisory is for (required)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit matches as JSON")
	checkCmd.Flags().BoolVar(&checkHTML, "html", false, "treat input as HTML and scan visible text only")
	_ = checkCmd.MarkFlagRequired("crop")
}

func runCheck(cmd *cobra.Command, args []string) error {
	file := args[0]

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	text := string(raw)
	if checkHTML {
		text, err = extract.VisibleText(text)
		if err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
	}

	f := newFilter(loadConfig())
	matches := f.ScanText(text, checkCrop)

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Printf("✓ No banned chemicals found for crop %q\n", checkCrop)
		return nil
	}

	fmt.Printf("Found %d banned chemical(s) for crop %q:\n", len(matches), checkCrop)
	for _, m := range matches {
		fmt.Printf("  - %s: %s\n", m.Name, m.Reason)
	}

	return nil
}
