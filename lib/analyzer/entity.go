package analyzer

// Kind classifies a recognized entity.
type Kind string

const (
	Disease   Kind = "disease"
	Test      Kind = "test"
	Treatment Kind = "treatment"
	// Symptom is reserved; no current rule emits it.
	Symptom Kind = "symptom"
)

// Entity is one structured fact recognized in free text. Value is set only
// for test entities where a numeric reading was found; Unit and NormalRange
// are set for every recognized lab test, reading or not. Entities are never
// mutated after recognition.
type Entity struct {
	Text        string   `json:"text"`
	Kind        Kind     `json:"type"`
	Value       *float64 `json:"value,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	NormalRange string   `json:"normal_range,omitempty"`
}

// Dedupe collapses entities sharing text and kind, keeping first occurrences
// in order. Recognition itself deliberately over-generates (the generic lab
// stage can emit several entities for one reading, treatment synonyms are not
// collapsed); callers that want unique entities apply this pass explicitly.
func Dedupe(entities []Entity) []Entity {
	type key struct {
		text string
		kind Kind
	}
	seen := make(map[key]struct{}, len(entities))
	res := make([]Entity, 0, len(entities))
	for _, e := range entities {
		k := key{e.Text, e.Kind}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, e)
	}
	return res
}
