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

// Package vocab holds the curated medical vocabulary: lab tests with normal
// ranges, disease and treatment surface forms, and the generic medical term
// bag used as a search fallback. The store is built once at startup and read
// only afterwards, so it is safe to share across concurrent requests.
//
// All collections are kept as insertion-ordered slices with index maps on the
// side. Iteration order is part of the recognition contract (first-match-wins
// rules, deterministic entity order), so nothing here iterates over a map.
package vocab

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// LabTest describes one lab test: canonical short key, display name, a
// human-readable normal range (threshold plus unit) and the keywords used to
// enrich a search query when a reading is abnormal.
type LabTest struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Normal   string   `yaml:"normal"`
	Keywords []string `yaml:"keywords"`
}

// Entry maps a local-language surface form to its canonical English concept.
type Entry struct {
	Surface   string `yaml:"surface"`
	Canonical string `yaml:"canonical"`
}

// TumorMarker groups the bare-mention surface patterns of one marker under
// its lab test key.
type TumorMarker struct {
	Key      string
	Patterns []string
}

type Vocabulary struct {
	labTests     []LabTest
	labIndex     map[string]int
	diseases     []Entry
	diseaseIndex map[string]string

	priorityDiseases []Entry
	treatments       []string
	tumorMarkers     []TumorMarker
	koreanLabNames   map[string]string

	medicalTerms        []Entry
	englishMedicalTerms []string
}

// LabTests returns all lab tests in definition order.
func (v *Vocabulary) LabTests() []LabTest { return v.labTests }

// LabTest looks up a test by its key.
func (v *Vocabulary) LabTest(key string) (LabTest, bool) {
	i, ok := v.labIndex[strings.ToLower(key)]
	if !ok {
		return LabTest{}, false
	}
	return v.labTests[i], true
}

// Diseases returns every disease surface form in definition order.
func (v *Vocabulary) Diseases() []Entry { return v.diseases }

// Canonical resolves a disease surface form to its English concept.
func (v *Vocabulary) Canonical(surface string) (string, bool) {
	c, ok := v.diseaseIndex[surface]
	return c, ok
}

// PriorityDiseases is the ordered partial-match list checked before the full
// disease vocabulary. Longer or more specific fragments come first; the
// recognizer stops at the first hit.
func (v *Vocabulary) PriorityDiseases() []Entry { return v.priorityDiseases }

// Treatments is the flat treatment/procedure keyword list.
func (v *Vocabulary) Treatments() []string { return v.treatments }

// TumorMarkers are the markers recognised from bare mentions, in precedence
// order.
func (v *Vocabulary) TumorMarkers() []TumorMarker { return v.tumorMarkers }

// KoreanLabName returns the local-language synonym for a lab test key, if
// one is defined.
func (v *Vocabulary) KoreanLabName(key string) (string, bool) {
	name, ok := v.koreanLabNames[key]
	return name, ok
}

// MedicalTerms is the broad local-language medical concept bag used by the
// query synthesizer's last-resort term extraction.
func (v *Vocabulary) MedicalTerms() []Entry { return v.medicalTerms }

// EnglishMedicalTerms complements MedicalTerms for English input.
func (v *Vocabulary) EnglishMedicalTerms() []string { return v.englishMedicalTerms }

var unitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(mg/dL)`),
	regexp.MustCompile(`(mg/L)`),
	regexp.MustCompile(`(g/dL)`),
	regexp.MustCompile(`(U/L)`),
	regexp.MustCompile(`(U/mL)`),
	regexp.MustCompile(`(ng/mL)`),
	regexp.MustCompile(`(mIU/mL)`),
	regexp.MustCompile(`(mmHg)`),
	regexp.MustCompile(`(%)`),
	regexp.MustCompile(`(/μL)`),
	regexp.MustCompile(`(M/μL)`),
}

// ExtractUnit pulls the unit out of a normal-range string, e.g.
// "<3.0 mg/L" -> "mg/L". Returns "" when no known unit is present.
func ExtractUnit(normalRange string) string {
	for _, re := range unitPatterns {
		if m := re.FindStringSubmatch(normalRange); m != nil {
			return m[1]
		}
	}
	return ""
}

func (v *Vocabulary) reindex() {
	v.labIndex = make(map[string]int, len(v.labTests))
	for i, t := range v.labTests {
		v.labIndex[t.Key] = i
	}
	v.diseaseIndex = make(map[string]string, len(v.diseases))
	for _, d := range v.diseases {
		v.diseaseIndex[d.Surface] = d.Canonical
	}
}

type yamlVocabulary struct {
	LabTests   []LabTest `yaml:"lab_tests"`
	Diseases   []Entry   `yaml:"diseases"`
	Treatments []string  `yaml:"treatments"`
}

// Load extends the default vocabulary with entries from a YAML file. New lab
// tests and disease surface forms are appended after the built-in ones, so
// built-in precedence is unchanged. The returned store must not be mutated
// after this call.
func Load(path string) (*Vocabulary, error) {
	v := Default()

	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find vocabulary file at %v", path))
		return nil, err
	}

	var extra yamlVocabulary
	if err := yaml.Unmarshal(bytes, &extra); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load vocabulary from %v", path))
		return nil, err
	}

	for _, t := range extra.LabTests {
		t.Key = strings.ToLower(t.Key)
		if _, ok := v.labIndex[t.Key]; ok {
			continue
		}
		v.labTests = append(v.labTests, t)
	}
	for _, d := range extra.Diseases {
		if _, ok := v.diseaseIndex[d.Surface]; ok {
			continue
		}
		v.diseases = append(v.diseases, d)
	}
	v.treatments = append(v.treatments, extra.Treatments...)
	v.reindex()

	log.Info().Msg(fmt.Sprintf("vocabulary extended from %v", path))

	return v, nil
}
