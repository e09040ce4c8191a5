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

// Package scoring computes bounded relevance scores for candidate papers.
//
// Two variants exist on purpose: the admission scorer used for result
// filtering and ranking, and the summarization scorer used for display
// ordering. They use different weight scales and different exclusion lists;
// the exact weights are the contract and must not be unified or "fixed".
package scoring

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
)

var koreanConceptPairs = []struct {
	korean  string
	english string
}{
	{"당뇨병", "diabetes"},
	{"고혈압", "hypertension"},
	{"파킨슨", "parkinson"},
	{"암", "cancer"},
	{"종양", "tumor"},
	{"심장", "heart"},
	{"뇌", "brain"},
	{"치료", "treatment"},
	{"진단", "diagnosis"},
	{"수술", "surgery"},
	{"효능", "efficacy"},
	{"효과", "effectiveness"},
}

var admissionMedicalKeywords = []string{
	"patient", "clinical", "treatment", "therapy", "diagnosis", "disease",
	"medical", "health", "study", "trial", "efficacy", "outcome", "hospital",
}

var ca125QueryForms = []string{"ca 125", "ca-125", "ca125"}
var ca125CompanionTerms = []string{"ca-125", "ca 125", "tumor marker", "ovarian cancer"}

// Admission scores a paper for result admission and ranking. Additive
// accumulation clamped to [0, 1]:
//
//	+0.05 per query token (>2 runes) in the title, else +0.02 if in the
//	abstract; per-kind entity bonuses; +0.03 per Korean/English concept pair
//	bridging query and document; +0.01 per generic medical keyword; +0.10
//	when a CA-125 query meets a document carrying its companion terms.
func Admission(title, abstract string, entities []analyzer.Entity, rawQuery string) float64 {
	title = strings.ToLower(title)
	abstract = strings.ToLower(abstract)
	content := title + " " + abstract
	queryLower := strings.ToLower(rawQuery)

	score := 0.0

	for _, word := range strings.Fields(queryLower) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if strings.Contains(title, word) {
			score += 0.05
		} else if strings.Contains(abstract, word) {
			score += 0.02
		}
	}

	for _, e := range entities {
		if !strings.Contains(content, strings.ToLower(e.Text)) {
			continue
		}
		switch e.Kind {
		case analyzer.Disease:
			score += 0.04
		case analyzer.Test:
			score += 0.03
		case analyzer.Treatment:
			score += 0.04
		}
	}

	for _, pair := range koreanConceptPairs {
		if strings.Contains(queryLower, pair.korean) && strings.Contains(content, pair.english) {
			score += 0.03
		}
	}

	for _, keyword := range admissionMedicalKeywords {
		if strings.Contains(content, keyword) {
			score += 0.01
		}
	}

	if containsAny(queryLower, ca125QueryForms) && containsAny(content, ca125CompanionTerms) {
		score += 0.10
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
