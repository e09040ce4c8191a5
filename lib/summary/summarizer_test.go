package summary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
)

func TestNewWithoutAPIKey(t *testing.T) {
	s, err := New(Config{})
	require.NoError(t, err)
	assert.False(t, s.Enabled())
}

func TestSummarizePaperDegradesWithoutModel(t *testing.T) {
	s, err := New(Config{})
	require.NoError(t, err)

	paper := pubmed.Paper{
		Abstract: "First sentence. Second sentence. Third sentence. Fourth sentence.",
	}
	got := s.SummarizePaper(context.Background(), paper, "질문")
	assert.Equal(t, "First sentence. Second sentence. Third sentence.", got)
}

func TestBasicSummary(t *testing.T) {
	assert.Equal(t, "One. Two.",
		BasicSummary(pubmed.Paper{Abstract: "One. Two."}))
	assert.Equal(t, "A trailing period is added.",
		BasicSummary(pubmed.Paper{Abstract: "A trailing period is added"}))
	assert.Equal(t, "요약을 생성할 수 없습니다.", BasicSummary(pubmed.Paper{}))
}

func TestBasicOverallSummary(t *testing.T) {
	assert.Equal(t, "'혈압'에 대한 관련 논문을 찾을 수 없습니다.",
		BasicOverallSummary(nil, "혈압"))

	papers := []PaperSummary{
		{Title: "a", PublicationDate: "2023-Jun-15"},
		{Title: "b", PublicationDate: "2019"},
		{Title: "c", PublicationDate: "2024"},
	}
	got := BasicOverallSummary(papers, "혈압")
	assert.Equal(t, "'혈압'에 대해 총 3개의 관련 논문을 찾았습니다."+
		" 이 중 2개는 최근(2023-2024년) 연구입니다."+
		" 각 논문의 상세 내용을 확인하여 더 자세한 정보를 얻으실 수 있습니다.", got)

	got = BasicOverallSummary([]PaperSummary{{Title: "a", PublicationDate: "2019"}}, "질문")
	assert.Equal(t, "'질문'에 대해 총 1개의 관련 논문을 찾았습니다."+
		" 각 논문의 상세 내용을 확인하여 더 자세한 정보를 얻으실 수 있습니다.", got)
}
