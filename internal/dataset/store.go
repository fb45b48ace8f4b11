// Package dataset loads and caches the CIB&RC banned pesticide dataset.
//
// The dataset is read and parsed at most once per process. A missing or
// malformed file is logged and downgraded to an empty dataset: the filter
// must degrade to "no warnings" rather than take down the advisory
// pipeline it protects. The failure is not retried.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/alpha-code-labs/Agri-sevak/internal/model"
	"github.com/rs/zerolog"
)

// Store owns the in-memory dataset for the process lifetime
type Store struct {
	path string
	log  zerolog.Logger

	once sync.Once
	data *model.Dataset
}

// NewStore creates a store reading from the given JSON file path.
// Nothing is read until the first Load.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, log: logger}
}

// Load returns the dataset, reading and parsing it on first call.
// Safe for concurrent use; after the first call all reads are lock-free.
// Never fails: a load error yields an empty dataset.
func (s *Store) Load() *model.Dataset {
	s.once.Do(func() {
		data, err := readDataset(s.path)
		if err != nil {
			s.log.Error().Err(err).Str("path", s.path).Msg("failed to load banned pesticide dataset")
			data = &model.Dataset{}
		}
		s.data = data
	})
	return s.data
}

func readDataset(path string) (*model.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var data model.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return &data, nil
}
