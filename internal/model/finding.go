package model

// Category classifies why a chemical must not be recommended
type Category string

const (
	CategoryBanned     Category = "banned"     // Banned outright (includes export-only entries, see filter)
	CategoryWithdrawn  Category = "withdrawn"  // Withdrawn from use
	CategoryRefused    Category = "refused"    // Registration refused
	CategoryRestricted Category = "restricted" // Banned for the resolved crop specifically
)

// Finding is one chemical resolved as forbidden for a specific crop
type Finding struct {
	Name         string   `json:"name"`                   // Canonical name
	Reason       string   `json:"reason"`                 // Human-readable reason for the ban
	Category     Category `json:"category"`               // Why it is forbidden
	Notification string   `json:"notification,omitempty"` // Restricted entries only
}

// Match is one chemical detected in a scanned text
type Match struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
