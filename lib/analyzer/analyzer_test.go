package analyzer

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

type AnalyzerSuite struct {
	suite.Suite
	analyzer *Analyzer
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

func (s *AnalyzerSuite) SetupSuite() {
	s.analyzer = New(vocab.Default())
}

func floatPtr(v float64) *float64 { return &v }

func (s *AnalyzerSuite) Test_analyzer_Recognize() {
	tests := []struct {
		name string
		text string
		want []Entity
	}{
		{
			name: "lab value with reading",
			text: "CRP 12.5",
			want: []Entity{
				{Text: "CRP 12.5", Kind: Test, Value: floatPtr(12.5), Unit: "mg/L", NormalRange: "<3.0 mg/L"},
			},
		},
		{
			name: "blood pressure pair yields a single systolic entity",
			text: "혈압이 190/100으로 측정되었습니다",
			want: []Entity{
				{Text: "190/100", Kind: Test, Value: floatPtr(190), Unit: "mmHg", NormalRange: "<120/80 mmHg"},
			},
		},
		{
			name: "ca-125 mention without a reading has no value",
			text: "CA-125 검사 결과가 걱정됩니다",
			want: []Entity{
				{Text: "CA-125", Kind: Test, Unit: "U/mL", NormalRange: "<35 U/mL"},
			},
		},
		{
			name: "ca-125 with a reading",
			text: "CA-125: 45.2",
			want: []Entity{
				{Text: "CA-125 45.2", Kind: Test, Value: floatPtr(45.2), Unit: "U/mL", NormalRange: "<35 U/mL"},
			},
		},
		{
			name: "disease plus lab value",
			text: "당뇨병 HbA1c 7.8",
			want: []Entity{
				{Text: "HBA1C 7.8", Kind: Test, Value: floatPtr(7.8), Unit: "%", NormalRange: "<5.7%"},
				{Text: "당뇨", Kind: Disease},
				{Text: "당뇨병", Kind: Disease},
			},
		},
		{
			name: "treatment keyword also matches the concept vocabulary",
			text: "spinal cord stimulation 효과가 궁금합니다",
			want: []Entity{
				{Text: "spinal cord stimulation", Kind: Disease},
				{Text: "효과", Kind: Disease},
				{Text: "spinal cord stimulation", Kind: Treatment},
			},
		},
		{
			name: "no medical content",
			text: "오늘 기분이 좋다",
			want: nil,
		},
		{
			name: "blood pressure outside physiological bounds is ignored",
			text: "값이 300/200이라면 오류입니다",
			want: nil,
		},
	}

	for _, tt := range tests {
		s.T().Log(tt.name)
		got := s.analyzer.Recognize(tt.text)
		if tt.want == nil {
			s.Empty(got)
		} else {
			s.Equal(tt.want, got)
		}
	}
}

func (s *AnalyzerSuite) Test_analyzer_Recognize_IsIdempotent() {
	text := "당뇨병 환자인데 HbA1c 7.8이고 혈압이 140/90입니다"
	first := s.analyzer.Recognize(text)
	second := s.analyzer.Recognize(text)
	s.Equal(first, second)
	s.NotEmpty(first)
}

func (s *AnalyzerSuite) Test_analyzer_Interpret() {
	entities := s.analyzer.Recognize("당뇨병 HbA1c 7.8")
	s.Equal([]string{"Hemoglobin A1c: 7.8 (비정상, 정상: <5.7%)"}, s.analyzer.Interpret(entities))

	entities = s.analyzer.Recognize("HbA1c 5.2")
	s.Equal([]string{"Hemoglobin A1c: 5.2 (정상 범위, 정상: <5.7%)"}, s.analyzer.Interpret(entities))

	// mention without a reading produces no interpretation
	entities = s.analyzer.Recognize("CA-125 검사")
	s.Empty(s.analyzer.Interpret(entities))
}

func (s *AnalyzerSuite) Test_IsAbnormal() {
	s.True(IsAbnormal("crp", 12.5))
	s.False(IsAbnormal("crp", 3.0))
	s.True(IsAbnormal("hba1c", 7.8))
	s.False(IsAbnormal("hba1c", 5.7))
	s.True(IsAbnormal("bp", 190))
	s.False(IsAbnormal("ldh", 500))
	s.False(IsAbnormal("unknown", 1000))
}

func (s *AnalyzerSuite) Test_Dedupe() {
	entities := []Entity{
		{Text: "당뇨병", Kind: Disease},
		{Text: "치료", Kind: Treatment},
		{Text: "당뇨병", Kind: Disease},
		{Text: "당뇨병", Kind: Treatment},
	}
	s.Equal([]Entity{
		{Text: "당뇨병", Kind: Disease},
		{Text: "치료", Kind: Treatment},
		{Text: "당뇨병", Kind: Treatment},
	}, Dedupe(entities))
}
