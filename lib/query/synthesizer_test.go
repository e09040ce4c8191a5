package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

type SynthesizerSuite struct {
	suite.Suite
	analyzer    *analyzer.Analyzer
	synthesizer *Synthesizer
}

func TestSynthesizerSuite(t *testing.T) {
	suite.Run(t, new(SynthesizerSuite))
}

func (s *SynthesizerSuite) SetupSuite() {
	v := vocab.Default()
	s.analyzer = analyzer.New(v)
	s.synthesizer = New(v)
}

func (s *SynthesizerSuite) synthesize(text string) string {
	return s.synthesizer.Synthesize(s.analyzer.Recognize(text), text)
}

const trailingClauses = ` AND "humans"[MeSH Terms] AND ("2014"[Date - Publication] : "2024"[Date - Publication])`

func (s *SynthesizerSuite) Test_synthesizer_Synthesize() {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "spinal cord stimulation takes precedence over everything",
			text: "척수자극술 치료 효과가 궁금합니다",
			want: `"spinal cord stimulation" AND "efficacy" AND "treatment"` + trailingClauses,
		},
		{
			name: "ca-125 with elevation wording",
			text: "CA-125 수치가 높게 나왔어요",
			want: `"CA-125" AND "ovarian cancer"` + trailingClauses,
		},
		{
			name: "ca-125 with normal range wording",
			text: "ca125 정상 범위가 어떻게 되나요",
			want: `"CA-125" AND "reference values"` + trailingClauses,
		},
		{
			name: "tumor marker mention",
			text: "CEA 수치 문의드립니다",
			want: `"CEA" AND "tumor marker"` + trailingClauses,
		},
		{
			name: "deep brain stimulation with parkinson",
			text: "파킨슨 환자의 deep brain stimulation 예후",
			want: `"deep brain stimulation" AND "parkinson disease"` + trailingClauses,
		},
		{
			name: "entity assembly capped at four terms",
			text: "당뇨병 HbA1c 7.8",
			want: `"당뇨" AND "diabetes mellitus" AND "Hemoglobin A1c" AND "diabetes"` + trailingClauses,
		},
		{
			name: "medical term fallback",
			text: "기침이 계속 나요",
			want: `"cough"` + trailingClauses,
		},
		{
			name: "no signal falls back to the minimal query",
			text: "안녕하세요",
			want: `"treatment" AND "therapy"` + trailingClauses,
		},
	}

	for _, tt := range tests {
		s.T().Log(tt.name)
		s.Equal(tt.want, s.synthesize(tt.text))
	}
}

func (s *SynthesizerSuite) Test_synthesizer_Synthesize_GenericPathTermCap() {
	q := s.synthesize("당뇨병 고혈압 고지혈증 위염 천식 관절염")
	base := strings.TrimSuffix(q, trailingClauses)
	s.NotEqual(q, base)
	s.LessOrEqual(len(strings.Split(base, " AND ")), 4)
}

func (s *SynthesizerSuite) Test_synthesizer_Synthesize_AlwaysEndsWithClauses() {
	for _, text := range []string{"", "scs 치료", "CA-125", "완전히 무관한 문장", "cholesterol 250"} {
		s.True(strings.HasSuffix(s.synthesize(text), trailingClauses), "input: %s", text)
	}
}
