package model

// RetrievalResult is one entry returned by the retrieval stage of the
// advisory pipeline. The filter only reads Evidence and writes
// SafetyWarnings; the remaining fields pass through untouched.
type RetrievalResult struct {
	Question       string   `json:"question,omitempty"`        // Matched knowledge-base question
	Answer         string   `json:"answer,omitempty"`          // Stored answer text
	Source         string   `json:"source,omitempty"`          // Document or corpus identifier
	Score          float64  `json:"score,omitempty"`           // Retrieval similarity score
	Evidence       []string `json:"evidence,omitempty"`        // Supporting snippets to scan
	SafetyWarnings []string `json:"safety_warnings,omitempty"` // Added by the filter when banned chemicals are found
}
