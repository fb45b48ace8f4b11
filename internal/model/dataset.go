package model

// Substance represents one chemical entry in the banned pesticide dataset
type Substance struct {
	Name         string   `json:"name"`                   // Canonical CIB&RC name
	Aliases      []string `json:"aliases,omitempty"`      // Brand and colloquial names
	BannedCrops  []string `json:"banned_crops,omitempty"` // Restricted entries only
	Restriction  string   `json:"restriction,omitempty"`  // Restricted entries only
	Notification string   `json:"notification,omitempty"` // Gazette notification reference
}

// Section is one category of the dataset file
type Section struct {
	Chemicals []Substance `json:"chemicals"`
}

// Dataset is the parsed banned_pesticides.json, organized into the five
// CIB&RC categories. Immutable once loaded.
type Dataset struct {
	Banned              Section `json:"banned"`                 // Banned for all crops, all uses
	BannedForExportOnly Section `json:"banned_for_export_only"` // Export-only per the source data
	Withdrawn           Section `json:"withdrawn"`              // No longer authorized
	RefusedRegistration Section `json:"refused_registration"`   // Never authorized
	Restricted          Section `json:"restricted"`             // Banned for enumerated crops only
}

// Sections returns the categories in resolution order
func (d *Dataset) Sections() []Section {
	return []Section{
		d.Banned,
		d.BannedForExportOnly,
		d.Withdrawn,
		d.RefusedRegistration,
		d.Restricted,
	}
}

// SectionNames returns the category keys in resolution order
func SectionNames() []string {
	return []string{"banned", "banned_for_export_only", "withdrawn", "refused_registration", "restricted"}
}

// IsEmpty reports whether the dataset contains no chemicals at all.
// A failed load produces an empty dataset, so this is also the
// "dataset unavailable" signal.
func (d *Dataset) IsEmpty() bool {
	for _, sec := range d.Sections() {
		if len(sec.Chemicals) > 0 {
			return false
		}
	}
	return true
}
