package filter

import (
	"fmt"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

const warningTemplate = "⚠️ BANNED: %s is banned for %s per CIB&RC India. " +
	"Reason: %s. Do NOT recommend this chemical. " +
	"Suggest a safe, registered alternative instead."

// InjectWarnings scans the evidence of each retrieval result for banned
// chemicals and returns a new slice with safety warnings attached to the
// entries that matched. The input slice and its entries are never
// mutated; entries with no matches are carried over unchanged, with no
// SafetyWarnings field added. Returns the input slice itself when results
// or crop are empty.
func (f *Filter) InjectWarnings(results []model.RetrievalResult, crop string) []model.RetrievalResult {
	if len(results) == 0 || crop == "" {
		return results
	}

	out := make([]model.RetrievalResult, len(results))
	copy(out, results)

	for i := range out {
		entry := &out[i]
		if len(entry.Evidence) == 0 {
			continue
		}

		var all []model.Match
		for _, evidence := range entry.Evidence {
			all = append(all, f.ScanText(evidence, crop)...)
		}

		unique := dedupeMatches(all)
		if len(unique) == 0 {
			continue
		}

		warnings := make([]string, 0, len(unique))
		names := make([]string, 0, len(unique))
		for _, m := range unique {
			warnings = append(warnings, fmt.Sprintf(warningTemplate, m.Name, crop, m.Reason))
			names = append(names, m.Name)
		}
		entry.SafetyWarnings = warnings

		f.log.Warn().
			Str("crop", crop).
			Strs("chemicals", names).
			Msg("banned chemicals found in retrieved evidence")
	}

	return out
}

// dedupeMatches keeps the first occurrence per normalized canonical name
func dedupeMatches(matches []model.Match) []model.Match {
	seen := make(map[string]bool)
	var unique []model.Match
	for _, m := range matches {
		key := normalize(m.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, m)
	}
	return unique
}
