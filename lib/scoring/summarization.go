package scoring

import (
	"strings"
	"unicode/utf8"
)

// summarizationDenominator normalizes the accumulated point score into [0, 1].
const summarizationDenominator = 30.0

// immediateExclusionPhrases short-circuit the summarization scorer to 0.0.
// Only unambiguously non-clinical material belongs here.
var immediateExclusionPhrases = []string{
	"autophagy in plants", "plant autophagy", "vegetable growth models",
	"health system review", "luxembourg health", "north macedonia health",
	"research advance on vegetable", "agricultural research", "plant biology",
	"veterinary medicine", "animal disease", "livestock health",
}

var summarizationMedicalKeywords = []string{
	"patient", "clinical", "treatment", "therapy", "diagnosis", "therapeutic",
	"medical", "hospital", "surgery", "drug", "medication", "medicine",
	"disease", "disorder", "syndrome", "infection", "cancer", "tumor",
	"cardiovascular", "diabetes", "hypertension", "inflammation",
	"pharmacological", "pathology", "symptoms", "prognosis", "mortality",
	"intervention", "randomized", "trial", "efficacy", "safety", "outcome",
	"healthcare", "health care", "medical care", "patient care", "nursing",
	"physician", "doctor", "nurse", "clinic", "emergency", "intensive care",
	"blood", "serum", "plasma", "laboratory", "biomarker", "screening",
	"hemoglobin", "anemia", "dizziness", "fatigue", "weakness",
}

// koreanQueryTerms score on the original query, not the document: a Korean
// medical query is a strong signal the request itself is clinical.
var koreanQueryTerms = []string{
	"치료", "진단", "환자", "질병", "질환", "증상", "검사", "수치",
	"헤모글로빈", "빈혈", "어지러움", "피로", "무력감",
}

var nonMedicalKeywords = []string{
	"autophagy in plants", "plant biology", "agricultural research",
	"health system review", "veterinary medicine", "livestock",
	"narcissism", "political", "social media", "artificial intelligence",
}

// Summarization scores a paper for display ordering. Point scale normalized
// by a fixed denominator and clamped to [0, 1]; a document matching an
// immediate-exclusion phrase scores exactly 0. Unlike Admission, title and
// abstract token hits both count for the same token.
func Summarization(title, abstract, rawQuery string) float64 {
	title = strings.ToLower(title)
	abstract = strings.ToLower(abstract)
	content := title + " " + abstract

	for _, phrase := range immediateExclusionPhrases {
		if strings.Contains(content, phrase) {
			return 0.0
		}
	}

	score := 0.0

	for _, word := range strings.Fields(rawQuery) {
		word = strings.ToLower(strings.TrimSpace(word))
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if strings.Contains(title, word) {
			score += 5
		}
		if strings.Contains(abstract, word) {
			score += 2
		}
	}

	for _, keyword := range summarizationMedicalKeywords {
		if strings.Contains(content, keyword) {
			score += 1
		}
	}

	for _, term := range koreanQueryTerms {
		if strings.Contains(rawQuery, term) {
			score += 3
		}
	}

	for _, keyword := range nonMedicalKeywords {
		if strings.Contains(content, keyword) {
			score -= 3
		}
	}

	normalized := score / summarizationDenominator
	if normalized < 0.0 {
		return 0.0
	}
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}
