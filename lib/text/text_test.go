package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	// full-width forms collapse to their ASCII equivalents
	assert.Equal(t, "CRP 12.5", Normalize("ＣＲＰ １２.５"))
	assert.Equal(t, "ca-125", Normalize("  ca-125\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestKeywords(t *testing.T) {
	keywords := Keywords("Spinal cord stimulation for chronic neuropathic pain management in patients", 5)
	assert.Equal(t, []string{"spinal", "cord", "stimulation", "chronic", "neuropathic"}, keywords)
}

func TestKeywordsFiltersStopwordsAndShortTokens(t *testing.T) {
	keywords := Keywords("This study of CRP and the observed results from patients", 10)
	assert.NotContains(t, keywords, "this")
	assert.NotContains(t, keywords, "study")
	assert.NotContains(t, keywords, "results")
	assert.NotContains(t, keywords, "patients")
	assert.NotContains(t, keywords, "crp")
}

func TestKeywordsSkipsNonASCIITokens(t *testing.T) {
	keywords := Keywords("만성통증 환자의 neuropathic pain 연구", 5)
	assert.Equal(t, []string{"neuropathic", "pain"}, keywords)
}
