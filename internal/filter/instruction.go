package filter

import (
	"fmt"
	"strings"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// SafetyInstruction renders the crop-specific banned pesticide block for
// the downstream auditor prompt. Restricted chemicals are enumerated in
// full; the universally banned ones are summarized by count with a fixed
// set of well-known examples to keep the prompt small. Returns the empty
// string when nothing is banned for the crop.
func (f *Filter) SafetyInstruction(crop string) string {
	findings := f.BannedForCrop(crop)
	if len(findings) == 0 {
		return ""
	}

	var restricted, fullyBanned []model.Finding
	for _, fd := range findings {
		if fd.Category == model.CategoryRestricted {
			restricted = append(restricted, fd)
		} else {
			fullyBanned = append(fullyBanned, fd)
		}
	}

	upper := strings.ToUpper(crop)
	lines := []string{
		"\n\nCRITICAL SAFETY RULE — BANNED PESTICIDES FOR " + upper + ":",
		"The following chemicals are BANNED by CIB&RC India. If ANY of these appear in the response, " +
			"you MUST remove that recommendation entirely and suggest a safe, registered alternative.",
		"",
	}

	if len(restricted) > 0 {
		lines = append(lines, "BANNED SPECIFICALLY FOR "+upper+":")
		for _, fd := range restricted {
			lines = append(lines, fmt.Sprintf("  - %s (%s)", fd.Name, fd.Reason))
		}
		lines = append(lines, "")
	}

	if len(fullyBanned) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Additionally, %d chemicals are completely banned in India "+
				"(including Endosulfan, Methyl Parathion, Phorate, Dichlorovos, Carbaryl, etc.). "+
				"Do not recommend any of these.", len(fullyBanned)))
		lines = append(lines, "")
	}

	lines = append(lines,
		"If you remove a banned chemical, restructure the answer to maintain completeness — "+
			"suggest an alternative treatment or direct the farmer to consult HAU/KVK experts.")

	return strings.Join(lines, "\n")
}
