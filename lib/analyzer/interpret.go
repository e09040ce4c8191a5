package analyzer

import (
	"fmt"
	"strings"
)

// Interpret renders one human-readable verdict per lab entity that carries a
// numeric reading, e.g. "Hemoglobin A1c: 7.8 (비정상, 정상: <5.7%)". Entities
// whose leading token is not a known test key (such as the blood-pressure
// pair) are skipped.
func (a *Analyzer) Interpret(entities []Entity) []string {
	var interpretations []string

	for _, e := range entities {
		if e.Kind != Test || e.Value == nil {
			continue
		}
		fields := strings.Fields(e.Text)
		if len(fields) == 0 {
			continue
		}
		key := strings.ToLower(fields[0])
		spec, ok := a.vocab.LabTest(key)
		if !ok {
			continue
		}

		status := "정상 범위"
		if IsAbnormal(key, *e.Value) {
			status = "비정상"
		}
		interpretations = append(interpretations,
			fmt.Sprintf("%s: %s (%s, 정상: %s)", spec.Name, formatValue(*e.Value), status, e.NormalRange))
	}

	return interpretations
}
