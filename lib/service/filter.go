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

package service

import (
	"strings"

	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
	"gitlab.com/hanul-informatics/medsearch/lib/scoring"
)

const (
	relevanceThreshold      = 0.10
	lipidRelevanceThreshold = 0.08
	scsRelevanceThreshold   = 0.05
)

var scsSearchMarkers = []string{"spinal cord stimulation", "scs", "척수자극술"}

var scsExcludeTerms = []string{"veterinary", "animal model only", "plant", "agriculture", "in vitro only"}

var generalExcludeTerms = []string{
	"veterinary medicine", "animal study only", "plant biology",
	"agricultural research", "environmental policy only",
}

var lipidInputMarkers = []string{"고지혈", "콜레스테롤", "cholesterol", "lipid", "hyperlipidemia"}

var lipidContentTerms = []string{
	"hyperlipidemia", "dyslipidemia", "cholesterol", "lipid",
	"triglyceride", "statin", "atherosclerosis",
}

// admitPapers scores each candidate paper and keeps the relevant ones.
// Neurostimulation searches tend to surface sparsely described papers, so
// they get a dedicated additive score with a much lower admission bar.
func admitPapers(papers []ScoredPaper, entities []analyzer.Entity, input string) []ScoredPaper {
	lowerInput := strings.ToLower(input)
	scsSearch := containsAny(lowerInput, scsSearchMarkers)

	admitted := make([]ScoredPaper, 0, len(papers))
	for _, paper := range papers {
		content := strings.ToLower(paper.Title) + " " + strings.ToLower(paper.Abstract)

		if scsSearch {
			score := scsScore(content)
			if score >= scsRelevanceThreshold && !containsAny(content, scsExcludeTerms) {
				paper.RelevanceScore = score
				admitted = append(admitted, paper)
			}
			continue
		}

		score := scoring.Admission(paper.Title, paper.Abstract, entities, input)
		paper.RelevanceScore = score

		threshold := relevanceThreshold
		if containsAny(lowerInput, lipidInputMarkers) && containsAny(content, lipidContentTerms) {
			threshold = lipidRelevanceThreshold
		}

		if score >= threshold && !containsAny(content, generalExcludeTerms) {
			admitted = append(admitted, paper)
		}
	}
	return admitted
}

func scsScore(content string) float64 {
	score := 0.0

	if strings.Contains(content, "spinal cord stimulation") {
		score += 0.7
	} else if strings.Contains(content, "scs") && (strings.Contains(content, "pain") || strings.Contains(content, "stimulation")) {
		score += 0.5
	} else if strings.Contains(content, "neurostimulation") && strings.Contains(content, "spinal") {
		score += 0.4
	}

	if containsAny(content, []string{"chronic pain", "neuropathic pain", "back pain"}) {
		score += 0.2
	}
	if containsAny(content, []string{"implantable", "device", "electrode"}) {
		score += 0.1
	}
	if containsAny(content, []string{"efficacy", "effectiveness", "outcome"}) {
		score += 0.1
	}

	return score
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
