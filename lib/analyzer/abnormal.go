package analyzer

import "strings"

// abnormalThresholds maps a subset of test keys to the single value above
// which a reading is flagged abnormal. For blood pressure the systolic
// reading is the value compared.
var abnormalThresholds = map[string]float64{
	"crp":         3.0,
	"hba1c":       5.7,
	"glucose":     100.0,
	"cholesterol": 200.0,
	"bp":          120.0,
}

// IsAbnormal reports whether value exceeds the configured threshold for the
// given test key. Tests without a threshold are never flagged.
func IsAbnormal(testKey string, value float64) bool {
	threshold, ok := abnormalThresholds[strings.ToLower(testKey)]
	if !ok {
		return false
	}
	return value > threshold
}
