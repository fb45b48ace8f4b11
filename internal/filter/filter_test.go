package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alpha-code-labs/Agri-sevak/internal/dataset"
)

const sampleDataset = `{
  "banned": {
    "chemicals": [
      {"name": "Endosulfan", "aliases": ["Thiodan", "Endocel"]},
      {"name": "Methyl Parathion", "aliases": ["Metacid"]}
    ]
  },
  "banned_for_export_only": {
    "chemicals": [
      {"name": "Captafol", "aliases": ["Difolatan"]}
    ]
  },
  "withdrawn": {
    "chemicals": [
      {"name": "Dalapon"}
    ]
  },
  "refused_registration": {
    "chemicals": [
      {"name": "Calcium Arsenate"}
    ]
  },
  "restricted": {
    "chemicals": [
      {
        "name": "Monocrotophos",
        "aliases": ["Monocil", "Nuvacron"],
        "banned_crops": ["vegetables"],
        "restriction": "Banned for use on vegetables",
        "notification": "S.O. 1482(E)"
      },
      {
        "name": "Fenitrothion",
        "banned_crops": ["cotton"],
        "restriction": "Not permitted on cotton"
      }
    ]
  }
}`

// restrictedOnlyDataset has no universally banned chemicals at all
const restrictedOnlyDataset = `{
  "restricted": {
    "chemicals": [
      {
        "name": "Monocrotophos",
        "aliases": ["Monocil"],
        "banned_crops": ["vegetables"],
        "restriction": "Banned for use on vegetables",
        "notification": "S.O. 1482(E)"
      }
    ]
  }
}`

// newTestFilter writes data to a temp dataset file and builds a filter on it
func newTestFilter(t *testing.T, data string) *Filter {
	t.Helper()

	path := filepath.Join(t.TempDir(), "banned_pesticides.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	store := dataset.NewStore(path, zerolog.Nop())
	return New(store, zerolog.Nop())
}

// newMissingDataFilter builds a filter whose dataset file does not exist
func newMissingDataFilter(t *testing.T) *Filter {
	t.Helper()

	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	store := dataset.NewStore(path, zerolog.Nop())
	return New(store, zerolog.Nop())
}
