package filter

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// matcher is one case-insensitive substring probe for a chemical.
// Evidence text references chemicals by brand or colloquial names, so
// every alias gets its own matcher pointing back at the canonical name.
type matcher struct {
	needle string // lowercased name or alias
	name   string // canonical name
	reason string
}

// matchersForCrop builds the ordered matcher set for a crop, memoized per
// normalized crop. Order follows resolver emission order, canonical name
// before aliases within each finding.
func (f *Filter) matchersForCrop(crop string) []matcher {
	key := normalize(crop)
	if cached, ok := f.matchers.Get(key); ok {
		return cached.([]matcher)
	}

	findings := f.BannedForCrop(crop)
	data := f.store.Load()

	var set []matcher
	for _, finding := range findings {
		for _, variant := range namesFor(data, finding.Name) {
			set = append(set, matcher{
				needle: strings.ToLower(variant),
				name:   finding.Name,
				reason: finding.Reason,
			})
		}
	}

	f.matchers.Set(key, set, gocache.DefaultExpiration)
	return set
}

// namesFor returns the canonical name plus every alias recorded for it,
// scanning all five categories. A chemical listed in more than one
// category contributes the aliases of each entry. Linear scan is fine at
// current dataset scale; index per load if the dataset grows.
func namesFor(data *model.Dataset, name string) []string {
	names := []string{name}
	target := normalize(name)

	for _, sec := range data.Sections() {
		for _, chem := range sec.Chemicals {
			if normalize(chem.Name) == target {
				names = append(names, chem.Aliases...)
				break
			}
		}
	}

	out := names[:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
