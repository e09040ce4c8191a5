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

// Package query turns recognized entities plus the raw input into a boolean
// PubMed search string: double-quoted terms joined by AND, closed by a
// human-subjects MeSH clause and a fixed publication-date window.
//
// Synthesis is an ordered rule chain with first-match-wins semantics. The
// domain short-circuit rules (spinal cord stimulation, CA-125) build and
// return their own clause set; only the generic path applies the 4-term cap.
package query

import (
	"strings"

	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

const (
	humansClause = ` AND "humans"[MeSH Terms]`
	dateClause   = ` AND ("2014"[Date - Publication] : "2024"[Date - Publication])`
	maxTerms     = 4
)

// treatmentProcessTerms are generic process words already covered by the
// treatment stage; disease entities carrying them are skipped to avoid a
// duplicate "treatment" term.
var treatmentProcessTerms = map[string]struct{}{
	"치료": {}, "치료법": {}, "치료방법": {}, "효능": {}, "효과": {}, "효과성": {},
}

var tumorMarkerSearches = []struct {
	surface string
	term    string
}{
	{"cea", `"CEA"`},
	{"afp", `"AFP"`},
	{"psa", `"PSA"`},
	{"ca 19-9", `"CA 19-9"`},
	{"ca15-3", `"CA 15-3"`},
	{"beta hcg", `"beta-hCG"`},
}

type rule struct {
	name  string
	apply func(s *Synthesizer, lower string) (string, bool)
}

// Synthesizer builds search queries against a fixed vocabulary. Immutable,
// safe for concurrent use.
type Synthesizer struct {
	vocab *vocab.Vocabulary
	rules []rule
}

func New(v *vocab.Vocabulary) *Synthesizer {
	return &Synthesizer{
		vocab: v,
		rules: []rule{
			{name: "spinal-cord-stimulation", apply: (*Synthesizer).spinalCordStimulation},
			{name: "ca-125", apply: (*Synthesizer).ca125},
		},
	}
}

// Synthesize never fails: with no usable signal it falls back to a minimal
// two-term query. The result always ends with the humans clause followed by
// the date window.
func (s *Synthesizer) Synthesize(entities []analyzer.Entity, rawText string) string {
	lower := strings.ToLower(rawText)

	for _, r := range s.rules {
		if q, ok := r.apply(s, lower); ok {
			return q
		}
	}

	var parts []string

	for _, m := range tumorMarkerSearches {
		if strings.Contains(lower, m.surface) {
			parts = append(parts, m.term, `"tumor marker"`)
			break
		}
	}

	if containsAny(lower, "deep brain stimulation", "dbs", "심부뇌자극술") {
		parts = append(parts, `"deep brain stimulation"`)
		if containsAny(lower, "파킨슨", "parkinson") {
			parts = append(parts, `"parkinson disease"`)
		}
	} else if containsAny(lower, "neurostimulation", "신경자극술") {
		parts = append(parts, `"neurostimulation"`, `"chronic pain"`)
	}

	if len(parts) == 0 {
		parts = s.assembleFromEntities(entities, lower)
	}

	if len(parts) == 0 {
		terms := s.extractMedicalTerms(rawText)
		if len(terms) > 2 {
			terms = terms[:2]
		}
		for _, term := range terms {
			parts = append(parts, quote(term))
		}
		if len(parts) == 0 {
			parts = []string{`"treatment"`, `"therapy"`}
		}
	}

	if len(parts) > maxTerms {
		parts = parts[:maxTerms]
	}
	return strings.Join(parts, " AND ") + humansClause + dateClause
}

func (s *Synthesizer) spinalCordStimulation(lower string) (string, bool) {
	if !containsAny(lower, "spinal cord stimulation", "scs", "척수자극술") {
		return "", false
	}

	parts := []string{`"spinal cord stimulation"`}
	if containsAny(lower, "효능", "효과", "efficacy", "effectiveness") {
		parts = append(parts, `"efficacy"`)
	}
	if containsAny(lower, "치료", "치료법", "treatment", "therapy") {
		parts = append(parts, `"treatment"`)
	}
	return strings.Join(parts, " AND ") + humansClause + dateClause, true
}

func (s *Synthesizer) ca125(lower string) (string, bool) {
	if !containsAny(lower, "ca 125", "ca-125", "ca125") {
		return "", false
	}

	parts := []string{`"CA-125"`}
	if containsAny(lower, "정상", "범위", "normal", "range") {
		parts = append(parts, `"reference values"`)
	}
	if containsAny(lower, "높", "상승", "elevated", "high") {
		parts = append(parts, `"ovarian cancer"`)
	}
	if containsAny(lower, "기준", "cutoff", "threshold") {
		parts = append(parts, `"diagnostic"`)
	}
	return strings.Join(parts, " AND ") + humansClause + dateClause, true
}

func (s *Synthesizer) assembleFromEntities(entities []analyzer.Entity, lower string) []string {
	var parts []string

	for _, e := range entities {
		if e.Kind == analyzer.Treatment {
			parts = append(parts, quote(e.Text))
		}
	}

	for _, e := range entities {
		if e.Kind != analyzer.Disease {
			continue
		}
		if _, ok := treatmentProcessTerms[strings.ToLower(e.Text)]; ok {
			continue
		}
		if english, ok := s.vocab.Canonical(e.Text); ok {
			parts = append(parts, quote(english))
		} else {
			parts = append(parts, quote(e.Text))
		}
	}

	for _, e := range entities {
		if e.Kind != analyzer.Test {
			continue
		}
		switch {
		case strings.HasPrefix(e.Text, "CA-125"):
			parts = append(parts, `"CA-125"`, `"tumor marker"`, `"ovarian cancer"`)
		case strings.HasPrefix(e.Text, "CEA"):
			parts = append(parts, `"CEA"`, `"tumor marker"`)
		case strings.HasPrefix(e.Text, "AFP"):
			parts = append(parts, `"AFP"`, `"tumor marker"`)
		case strings.HasPrefix(e.Text, "PSA"):
			parts = append(parts, `"PSA"`, `"prostate cancer"`)
		default:
			fields := strings.Fields(e.Text)
			if len(fields) == 0 {
				continue
			}
			spec, ok := s.vocab.LabTest(strings.ToLower(fields[0]))
			if !ok {
				continue
			}
			parts = append(parts, quote(spec.Name))
			if e.Value != nil && analyzer.IsAbnormal(spec.Key, *e.Value) {
				keywords := spec.Keywords
				if len(keywords) > 2 {
					keywords = keywords[:2]
				}
				for _, kw := range keywords {
					parts = append(parts, quote(kw))
				}
			}
		}
	}

	for _, keyword := range []string{"효능", "효과", "효과성", "efficacy", "effectiveness", "outcome"} {
		if !strings.Contains(lower, keyword) || anyPartContains(parts, keyword) {
			continue
		}
		switch keyword {
		case "효능", "효과", "효과성":
			parts = append(parts, `"efficacy"`)
		default:
			parts = append(parts, quote(keyword))
		}
		break
	}

	return parts
}

// extractMedicalTerms is the last-resort vocabulary lookup over the raw text,
// used only when entity assembly produced nothing.
func (s *Synthesizer) extractMedicalTerms(text string) []string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "spinal cord stimulation") {
		return []string{"spinal cord stimulation", "chronic pain", "neuropathic pain", "pain management"}
	}
	if strings.Contains(lower, "scs") && (strings.Contains(lower, "치료") || strings.Contains(lower, "효능")) {
		return []string{"spinal cord stimulation", "chronic pain", "neuropathic pain"}
	}
	if strings.Contains(lower, "척수자극술") {
		return []string{"spinal cord stimulation", "chronic pain", "neuropathic pain"}
	}
	if strings.Contains(lower, "deep brain stimulation") || strings.Contains(lower, "dbs") {
		return []string{"deep brain stimulation", "parkinson disease", "movement disorder"}
	}
	if strings.Contains(lower, "neurostimulation") || strings.Contains(lower, "신경자극술") {
		return []string{"neurostimulation", "chronic pain", "neuropathic pain"}
	}

	var terms []string
	for _, t := range s.vocab.MedicalTerms() {
		if strings.Contains(lower, t.Surface) {
			terms = append(terms, t.Canonical)
		}
	}
	for _, t := range s.vocab.EnglishMedicalTerms() {
		if strings.Contains(lower, t) && !containsString(terms, t) {
			terms = append(terms, t)
		}
	}
	return dedupe(terms)
}

func quote(term string) string {
	return `"` + term + `"`
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func anyPartContains(parts []string, substring string) bool {
	for _, p := range parts {
		if strings.Contains(p, substring) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	res := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}
	return res
}
