package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabTestLookup(t *testing.T) {
	v := Default()

	crp, ok := v.LabTest("crp")
	assert.True(t, ok)
	assert.Equal(t, "C-reactive protein", crp.Name)
	assert.Equal(t, "<3.0 mg/L", crp.Normal)

	// the lookup is case insensitive and covers the hyphen/space aliases
	for _, key := range []string{"CA125", "ca-125", "ca 125"} {
		marker, ok := v.LabTest(key)
		assert.True(t, ok, key)
		assert.Equal(t, "CA-125", marker.Name)
	}

	_, ok = v.LabTest("nonexistent")
	assert.False(t, ok)
}

func TestCanonical(t *testing.T) {
	v := Default()

	english, ok := v.Canonical("당뇨병")
	assert.True(t, ok)
	assert.Equal(t, "diabetes mellitus", english)

	_, ok = v.Canonical("정체불명")
	assert.False(t, ok)
}

func TestOrderingIsStable(t *testing.T) {
	v := Default()

	// iteration order is part of the recognition contract
	assert.Equal(t, "crp", v.LabTests()[0].Key)
	assert.Equal(t, "당뇨병", v.Diseases()[0].Surface)
	assert.Equal(t, "파킨슨", v.PriorityDiseases()[0].Surface)
	assert.Equal(t, "cea", v.TumorMarkers()[0].Key)
	assert.Equal(t, "spinal cord stimulation", v.Treatments()[0])
}

func TestExtractUnit(t *testing.T) {
	tests := []struct {
		normal string
		want   string
	}{
		{"<3.0 mg/L", "mg/L"},
		{"70-100 mg/dL", "mg/dL"},
		{"<5.7%", "%"},
		{"<120/80 mmHg", "mmHg"},
		{"<35 U/mL", "U/mL"},
		{"140-280 U/L", "U/L"},
		{"4,500-11,000/μL", "/μL"},
		{"no unit here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractUnit(tt.normal), tt.normal)
	}
}

func TestLoadExtendsDefaults(t *testing.T) {
	content := `lab_tests:
  - key: TSH
    name: Thyroid stimulating hormone
    normal: 0.4-4.0 mIU/mL
    keywords:
      - thyroid
  - key: crp
    name: should not replace the builtin
diseases:
  - surface: 갑상선암
    canonical: thyroid cancer
  - surface: 당뇨병
    canonical: should not replace the builtin
treatments:
  - 방사선치료
`
	path := filepath.Join(t.TempDir(), "vocab.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v, err := Load(path)
	require.NoError(t, err)

	tsh, ok := v.LabTest("tsh")
	assert.True(t, ok)
	assert.Equal(t, "Thyroid stimulating hormone", tsh.Name)

	crp, _ := v.LabTest("crp")
	assert.Equal(t, "C-reactive protein", crp.Name)

	english, ok := v.Canonical("갑상선암")
	assert.True(t, ok)
	assert.Equal(t, "thyroid cancer", english)

	english, _ = v.Canonical("당뇨병")
	assert.Equal(t, "diabetes mellitus", english)

	assert.Contains(t, v.Treatments(), "방사선치료")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vocab.yml")
	assert.Error(t, err)
}
