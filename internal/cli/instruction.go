package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// instructionCmd represents the instruction command
var instructionCmd = &cobra.Command{
	Use:   "instruction <crop>",
	Short: "Print the auditor safety instruction block for a crop",
	Long: `Instruction renders the crop-specific banned pesticide block that gets
concatenated into the downstream auditor prompt. Restricted chemicals
are listed in full; universally banned ones are summarized by count.

Example:
  agrishield instruction cotton`,
	Args: cobra.ExactArgs(1),
	RunE: runInstruction,
}

func init() {
	rootCmd.AddCommand(instructionCmd)
}

func runInstruction(cmd *cobra.Command, args []string) error {
	crop := args[0]

	f := newFilter(loadConfig())
	text := f.SafetyInstruction(crop)
	if text == "" {
		fmt.Fprintf(os.Stderr, "No banned chemicals recorded for crop %q\n", crop)
		return nil
	}

	fmt.Println(text)
	return nil
}
