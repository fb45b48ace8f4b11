package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafetyInstruction_FullDataset(t *testing.T) {
	f := newTestFilter(t, sampleDataset)

	text := f.SafetyInstruction("cotton")
	require.NotEmpty(t, text)

	assert.Contains(t, text, "CRITICAL SAFETY RULE — BANNED PESTICIDES FOR COTTON:")
	assert.Contains(t, text, "BANNED SPECIFICALLY FOR COTTON:")
	assert.Contains(t, text, "  - Fenitrothion (Restricted: Not permitted on cotton)")

	// Universally banned chemicals are summarized by count, never listed
	assert.Contains(t, text, "Additionally, 5 chemicals are completely banned in India")
	assert.NotContains(t, text, "  - Endosulfan")
	assert.NotContains(t, text, "  - Captafol")

	// Closing directive with the extension-expert fallback
	assert.Contains(t, text, "restructure the answer to maintain completeness")
	assert.Contains(t, text, "HAU/KVK experts")
}

func TestSafetyInstruction_RestrictedOnly(t *testing.T) {
	f := newTestFilter(t, restrictedOnlyDataset)

	text := f.SafetyInstruction("vegetables")
	require.NotEmpty(t, text)

	assert.Contains(t, text, "  - Monocrotophos (Restricted: Banned for use on vegetables)")
	assert.NotContains(t, text, "completely banned in India",
		"no count sentence when nothing is universally banned")
}

func TestSafetyInstruction_NoFindings(t *testing.T) {
	f := newTestFilter(t, restrictedOnlyDataset)

	// Nothing in the dataset applies to wheat
	assert.Equal(t, "", f.SafetyInstruction("wheat"))
}

func TestSafetyInstruction_EmptyDataset(t *testing.T) {
	f := newMissingDataFilter(t)
	assert.Equal(t, "", f.SafetyInstruction("cotton"))
}

func TestSafetyInstruction_Layout(t *testing.T) {
	f := newTestFilter(t, sampleDataset)

	text := f.SafetyInstruction("cotton")

	// Leading blank lines so the block can be concatenated directly
	// onto an existing prompt
	assert.True(t, strings.HasPrefix(text, "\n\nCRITICAL SAFETY RULE"))

	// Restricted list renders before the count summary
	restrictedIdx := strings.Index(text, "BANNED SPECIFICALLY FOR")
	summaryIdx := strings.Index(text, "Additionally,")
	require.Greater(t, restrictedIdx, -1)
	require.Greater(t, summaryIdx, -1)
	assert.Less(t, restrictedIdx, summaryIdx)
}
