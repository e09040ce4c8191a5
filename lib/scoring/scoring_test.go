package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
)

func TestAdmissionWeights(t *testing.T) {
	title := "Spinal cord stimulation for chronic pain"
	abstract := "Clinical trial of treatment efficacy in patients"
	entities := []analyzer.Entity{{Text: "spinal cord stimulation", Kind: analyzer.Treatment}}

	// 3 query tokens in the title (0.15), treatment entity (0.04), the
	// 치료/treatment concept pair (0.03) and 5 generic keywords (0.05)
	got := Admission(title, abstract, entities, "spinal cord stimulation 치료")
	assert.InDelta(t, 0.27, got, 1e-9)
}

func TestAdmissionTitleBeatsAbstract(t *testing.T) {
	// the same token must not be counted in both fields
	withBoth := Admission("diabetes research", "diabetes research", nil, "diabetes")
	titleOnly := Admission("diabetes research", "", nil, "diabetes")
	assert.InDelta(t, titleOnly, withBoth, 1e-9)
}

func TestAdmissionShortTokensIgnored(t *testing.T) {
	got := Admission("ab cd ef", "", nil, "ab cd ef")
	assert.Equal(t, 0.0, got)
}

func TestAdmissionCA125Bonus(t *testing.T) {
	got := Admission("CA-125 as a biomarker", "", nil, "ca-125 수치")
	// "ca-125" token in title (0.05) plus the companion bonus (0.10)
	assert.InDelta(t, 0.15, got, 1e-9)
}

func TestAdmissionClampedToOne(t *testing.T) {
	query := strings.Repeat("cancer ", 30)
	got := Admission("cancer", "", nil, query)
	assert.Equal(t, 1.0, got)
}

func TestAdmissionEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Admission("", "", nil, ""))
}

func TestSummarizationImmediateExclusion(t *testing.T) {
	got := Summarization("Autophagy in plants and crop yield", "A clinical study of patients", "치료")
	assert.Equal(t, 0.0, got)
}

func TestSummarizationWeights(t *testing.T) {
	got := Summarization("Diabetes treatment in patients", "A clinical trial", "diabetes 치료 효과")
	// diabetes in the title (5), six medical keyword hits including the
	// clinic/clinical overlap (6), one Korean query term (3): 14/30
	assert.InDelta(t, 14.0/30.0, got, 1e-9)
}

func TestSummarizationTitleAndAbstractBothCount(t *testing.T) {
	both := Summarization("diabetes", "diabetes", "diabetes")
	titleOnly := Summarization("diabetes", "", "diabetes")
	assert.Greater(t, both, titleOnly)
}

func TestSummarizationNeverNegative(t *testing.T) {
	got := Summarization("Narcissism and social media", "Political analysis", "무관한 질문")
	assert.Equal(t, 0.0, got)
}

func TestScorersStayWithinBounds(t *testing.T) {
	inputs := []struct{ title, abstract, query string }{
		{"", "", ""},
		{"cancer treatment", strings.Repeat("patient clinical trial ", 50), strings.Repeat("treatment ", 50)},
		{"무작위 한국어 제목", "초록 없음", "치료 진단 환자 질병 질환 증상 검사 수치"},
	}
	for _, in := range inputs {
		a := Admission(in.title, in.abstract, nil, in.query)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)

		s := Summarization(in.title, in.abstract, in.query)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
