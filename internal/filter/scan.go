package filter

import (
	"strings"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// ScanText scans a text for mentions of chemicals banned for the given
// crop. Matching is case-insensitive substring search over canonical
// names and aliases, not word-boundary search, so a pattern can match
// inside a larger word. Each chemical is reported at most once, in
// resolver emission order.
func (f *Filter) ScanText(text, crop string) []model.Match {
	if text == "" || crop == "" {
		return nil
	}

	haystack := strings.ToLower(text)
	seen := make(map[string]bool)

	var found []model.Match
	for _, m := range f.matchersForCrop(crop) {
		// Dedupe by normalized canonical name: a chemical listed in two
		// categories is still one substance
		key := normalize(m.name)
		if seen[key] {
			continue
		}
		if strings.Contains(haystack, m.needle) {
			found = append(found, model.Match{Name: m.name, Reason: m.reason})
			seen[key] = true
		}
	}

	return found
}
