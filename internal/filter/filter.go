// Package filter implements the banned pesticide compliance filter.
//
// Given a crop, it resolves which chemicals CIB&RC India forbids for that
// crop, scans free text for mentions of them (by canonical name or alias),
// injects safety warnings into retrieved evidence before the generation
// stage consumes it, and renders the banned-substance instruction block
// for the downstream auditor prompt.
//
// The filter annotates and instructs; it does not enforce. Enforcement is
// the responsibility of the consumer of the warnings and instructions.
package filter

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/alpha-code-labs/Agri-sevak/internal/dataset"
)

const (
	matcherTTL     = 5 * time.Minute
	matcherCleanup = 10 * time.Minute
)

// Filter resolves and detects banned chemicals for crops
type Filter struct {
	store *dataset.Store
	log   zerolog.Logger

	// Compiled matcher sets memoized per normalized crop. The dataset is
	// immutable after load, so a memoized set is identical to a rebuild.
	matchers *gocache.Cache
}

// New creates a filter backed by the given dataset store
func New(store *dataset.Store, logger zerolog.Logger) *Filter {
	return &Filter{
		store:    store,
		log:      logger,
		matchers: gocache.New(matcherTTL, matcherCleanup),
	}
}

// normalize folds case and trims surrounding whitespace
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
