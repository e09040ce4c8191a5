/*
 * Copyright 2025 Hanul Informatics
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package analyzer recognizes medical entities (lab readings, diseases,
// treatments) in short free-text queries against the vocab store.
//
// Recognition is layered, each stage appending to the result: priority
// numeric lab patterns, bare tumor-marker mentions, generic per-test numeric
// patterns, disease matching (priority partial list first), treatment
// keywords, and finally the blood-pressure pair. Matching is substring based
// without word boundaries; false positives from short fragments inside longer
// words are accepted behaviour that downstream scoring relies on.
package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

// markerKeys are handled by the dedicated tumor-marker stages and skipped by
// the generic numeric loop.
var markerKeys = map[string]struct{}{
	"ca125": {}, "ca-125": {}, "ca 125": {}, "cea": {}, "afp": {},
	"psa": {}, "ca19-9": {}, "ca15-3": {}, "beta-hcg": {}, "ldh": {},
}

var (
	ca125ValuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`ca\s*-?\s*125\s*:?\s*(\d+\.?\d*)`),
		regexp.MustCompile(`ca125\s*:?\s*(\d+\.?\d*)`),
		regexp.MustCompile(`ca\s+125\s*:?\s*(\d+\.?\d*)`),
	}
	ca125MentionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ca\s*-?\s*125`),
		regexp.MustCompile(`ca125`),
		regexp.MustCompile(`ca\s+125`),
	}
	bloodPressurePattern = regexp.MustCompile(`(\d{2,3})/(\d{2,3})`)
)

type labPatterns struct {
	test     vocab.LabTest
	patterns []*regexp.Regexp
}

// Analyzer recognizes entities against a fixed vocabulary. It is immutable
// after New and safe for concurrent use.
type Analyzer struct {
	vocab   *vocab.Vocabulary
	generic []labPatterns
}

func New(v *vocab.Vocabulary) *Analyzer {
	a := &Analyzer{vocab: v}

	for _, test := range v.LabTests() {
		if _, ok := markerKeys[test.Key]; ok {
			continue
		}
		patterns := []*regexp.Regexp{
			regexp.MustCompile(regexp.QuoteMeta(test.Key) + `\s*:?\s*(\d+\.?\d*)`),
			regexp.MustCompile(regexp.QuoteMeta(strings.ToLower(test.Name)) + `\s*:?\s*(\d+\.?\d*)`),
		}
		if korean, ok := v.KoreanLabName(test.Key); ok {
			patterns = append(patterns, regexp.MustCompile(regexp.QuoteMeta(korean)+`\s*:?\s*(\d+\.?\d*)`))
		}
		a.generic = append(a.generic, labPatterns{test: test, patterns: patterns})
	}

	return a
}

// Recognize scans text and returns every detected entity in detection order.
// It is total: no input produces an error, absence of matches yields an empty
// slice.
func (a *Analyzer) Recognize(text string) []Entity {
	entities := a.extractLabValues(text)
	entities = append(entities, a.extractDiseases(text)...)
	entities = append(entities, a.extractTreatments(text)...)
	entities = append(entities, a.extractBloodPressure(text)...)
	return entities
}

func (a *Analyzer) extractLabValues(text string) []Entity {
	var entities []Entity
	lower := strings.ToLower(text)

	// CA-125 with a numeric reading takes priority over bare mentions.
	ca125, _ := a.vocab.LabTest("ca125")
	ca125Found := false
	for _, re := range ca125ValuePatterns {
		for _, match := range re.FindAllStringSubmatch(lower, -1) {
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			entities = append(entities, Entity{
				Text:        "CA-125 " + formatValue(value),
				Kind:        Test,
				Value:       &value,
				Unit:        "U/mL",
				NormalRange: ca125.Normal,
			})
			ca125Found = true
		}
	}

	if !ca125Found {
		for _, re := range ca125MentionPatterns {
			if re.MatchString(lower) {
				entities = append(entities, Entity{
					Text:        "CA-125",
					Kind:        Test,
					Unit:        "U/mL",
					NormalRange: ca125.Normal,
				})
				break
			}
		}
	}

	// Other tumor markers are recognized from bare mentions only; at most one
	// marker per call.
	for _, marker := range a.vocab.TumorMarkers() {
		found := false
		for _, pattern := range marker.Patterns {
			if strings.Contains(lower, pattern) {
				spec, _ := a.vocab.LabTest(marker.Key)
				entities = append(entities, Entity{
					Text:        spec.Name,
					Kind:        Test,
					Unit:        vocab.ExtractUnit(spec.Normal),
					NormalRange: spec.Normal,
				})
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	// Generic numeric patterns for all remaining tests. Every pattern variant
	// that matches emits its own entity.
	for _, lp := range a.generic {
		for _, re := range lp.patterns {
			for _, match := range re.FindAllStringSubmatch(lower, -1) {
				value, err := strconv.ParseFloat(match[1], 64)
				if err != nil {
					continue
				}
				entities = append(entities, Entity{
					Text:        strings.ToUpper(lp.test.Key) + " " + formatValue(value),
					Kind:        Test,
					Value:       &value,
					Unit:        vocab.ExtractUnit(lp.test.Normal),
					NormalRange: lp.test.Normal,
				})
			}
		}
	}

	return entities
}

func (a *Analyzer) extractDiseases(text string) []Entity {
	var entities []Entity
	lower := strings.ToLower(text)

	emitted := func(t string) bool {
		for _, e := range entities {
			if e.Text == t {
				return true
			}
		}
		return false
	}

	// priority partial-match list: first hit wins
	for _, p := range a.vocab.PriorityDiseases() {
		if strings.Contains(text, p.Surface) {
			entities = append(entities, Entity{Text: p.Surface, Kind: Disease})
			break
		}
	}

	for _, d := range a.vocab.Diseases() {
		if strings.Contains(text, d.Surface) && !emitted(d.Surface) {
			entities = append(entities, Entity{Text: d.Surface, Kind: Disease})
		} else if strings.Contains(lower, strings.ToLower(d.Canonical)) && !emitted(d.Canonical) {
			entities = append(entities, Entity{Text: d.Canonical, Kind: Disease})
		}
	}

	return entities
}

func (a *Analyzer) extractTreatments(text string) []Entity {
	var entities []Entity
	lower := strings.ToLower(text)

	// no dedup here: synonyms of the same procedure each yield an entity
	for _, keyword := range a.vocab.Treatments() {
		if strings.Contains(lower, keyword) {
			entities = append(entities, Entity{Text: keyword, Kind: Treatment})
		}
	}

	return entities
}

func (a *Analyzer) extractBloodPressure(text string) []Entity {
	var entities []Entity
	bp, _ := a.vocab.LabTest("bp")

	for _, match := range bloodPressurePattern.FindAllStringSubmatch(text, -1) {
		systolic, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		diastolic, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if systolic < 80 || systolic > 250 || diastolic < 40 || diastolic > 150 {
			continue
		}
		value := float64(systolic)
		entities = append(entities, Entity{
			Text:        fmt.Sprintf("%d/%d", systolic, diastolic),
			Kind:        Test,
			Value:       &value,
			Unit:        "mmHg",
			NormalRange: bp.Normal,
		})
	}

	return entities
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
