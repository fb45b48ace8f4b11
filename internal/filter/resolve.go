package filter

import (
	"strings"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
)

// Category-specific reasons attached to resolved findings.
// Export-only entries are deliberately conflated with the outright ban:
// a chemical India forbids for export must not be recommended to domestic
// farmers either. This is a policy rule of the filter, not a dataset fact.
const (
	reasonBanned     = "Completely banned in India"
	reasonExportOnly = "Banned for domestic use in India"
	reasonWithdrawn  = "Withdrawn from use in India"
	reasonRefused    = "Never registered in India"
)

// BannedForCrop returns every chemical that must not be recommended for
// the given crop: all universally banned, export-only, withdrawn, and
// refused-registration chemicals, plus restricted chemicals whose
// banned_crops list matches the crop. Always returns a (possibly empty)
// slice; an unavailable dataset yields no findings.
func (f *Filter) BannedForCrop(crop string) []model.Finding {
	data := f.store.Load()
	if data.IsEmpty() {
		return nil
	}

	var findings []model.Finding

	for _, chem := range data.Banned.Chemicals {
		findings = append(findings, model.Finding{
			Name:     chem.Name,
			Reason:   reasonBanned,
			Category: model.CategoryBanned,
		})
	}

	for _, chem := range data.BannedForExportOnly.Chemicals {
		findings = append(findings, model.Finding{
			Name:     chem.Name,
			Reason:   reasonExportOnly,
			Category: model.CategoryBanned,
		})
	}

	for _, chem := range data.Withdrawn.Chemicals {
		findings = append(findings, model.Finding{
			Name:     chem.Name,
			Reason:   reasonWithdrawn,
			Category: model.CategoryWithdrawn,
		})
	}

	for _, chem := range data.RefusedRegistration.Chemicals {
		findings = append(findings, model.Finding{
			Name:     chem.Name,
			Reason:   reasonRefused,
			Category: model.CategoryRefused,
		})
	}

	for _, chem := range data.Restricted.Chemicals {
		if !cropMatchesAny(crop, chem.BannedCrops) {
			continue
		}
		findings = append(findings, model.Finding{
			Name:         chem.Name,
			Reason:       "Restricted: " + chem.Restriction,
			Category:     model.CategoryRestricted,
			Notification: chem.Notification,
		})
	}

	return findings
}

func cropMatchesAny(crop string, bannedCrops []string) bool {
	for _, bc := range bannedCrops {
		if cropMatches(crop, bc) {
			return true
		}
	}
	return false
}

// cropMatches reports whether a crop matches a banned_crop entry.
// Equality or bidirectional substring after normalization, so a crop of
// "raw fruits" matches a banned_crop of "fruits consumed raw". Known
// limitation: "rice" also matches "wild rice" in both directions. The
// permissiveness is a domain policy choice; do not tighten it here.
func cropMatches(crop, bannedCrop string) bool {
	c := normalize(crop)
	b := normalize(bannedCrop)
	if c == "" || b == "" {
		return false
	}
	if c == b {
		return true
	}
	return strings.Contains(c, b) || strings.Contains(b, c)
}
