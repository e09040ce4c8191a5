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

// Package summary produces Korean prose summaries of papers via an
// OpenAI-compatible chat model. Without an API key, or on any model error,
// it degrades to a basic extract of the abstract. Degrading never affects
// scoring or filtering, which read only title and abstract.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
)

type Config struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// PaperSummary is the slice of a scored paper that the overall summary needs.
type PaperSummary struct {
	Title           string
	Summary         string
	PublicationDate string
}

type Summarizer struct {
	llm     llms.Model
	enabled bool
}

func New(conf Config) (*Summarizer, error) {
	if conf.APIKey == "" {
		return &Summarizer{}, nil
	}

	model := conf.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	client, err := openai.New(
		openai.WithToken(conf.APIKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &Summarizer{llm: client, enabled: true}, nil
}

// Enabled reports whether a chat model is configured.
func (s *Summarizer) Enabled() bool { return s.enabled }

// SummarizePaper returns a Korean summary of the paper oriented to the user's
// question. Total: every failure path yields the basic summary instead.
func (s *Summarizer) SummarizePaper(ctx context.Context, paper pubmed.Paper, userQuery string) string {
	if !s.enabled {
		return BasicSummary(paper)
	}

	prompt := fmt.Sprintf(`다음 의학 논문을 사용자의 질문 "%s"와 관련하여 한국어로 요약해주세요:

Title: %s

Abstract: %s

다음 형식으로 응답해주세요:
1. 핵심 내용 (2-3문장)
2. 사용자 질문과의 관련성
3. 주요 결과나 결론
4. 임상적 의미 (있다면)

간결하고 이해하기 쉽게 작성해주세요.`, userQuery, paper.Title, paper.Abstract)

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem,
			"당신은 의학 논문을 요약하는 전문가입니다. 일반인도 이해할 수 있도록 명확하고 간결하게 설명해주세요."),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := s.llm.GenerateContent(ctx, content, llms.WithMaxTokens(500), llms.WithTemperature(0.3))
	if err != nil || len(resp.Choices) == 0 {
		log.Warn().Err(err).Str("pmid", paper.PMID).Msg("paper summary degraded to basic summary")
		return BasicSummary(paper)
	}

	return resp.Choices[0].Content
}

// OverallSummary condenses the top results into one answer to the user's
// question.
func (s *Summarizer) OverallSummary(ctx context.Context, papers []PaperSummary, userQuery string) string {
	if !s.enabled || len(papers) == 0 {
		return BasicOverallSummary(papers, userQuery)
	}

	top := papers
	if len(top) > 3 {
		top = top[:3]
	}

	var papersInfo strings.Builder
	for i, paper := range top {
		summary := paper.Summary
		if len(summary) > 200 {
			summary = summary[:200]
		}
		fmt.Fprintf(&papersInfo, "%d. %s\n   요약: %s...\n\n", i+1, paper.Title, summary)
	}

	prompt := fmt.Sprintf(`사용자가 "%s"에 대해 질문했고, 다음과 같은 관련 논문들을 찾았습니다:

%s

이 논문들을 바탕으로 사용자의 질문에 대한 종합적인 답변을 한국어로 작성해주세요:

1. 현재 연구 동향
2. 주요 발견사항
3. 임상적 시사점 (있다면)
4. 추가 고려사항

300자 이내로 간결하게 작성해주세요.`, userQuery, papersInfo.String())

	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, "당신은 의학 연구 동향을 분석하는 전문가입니다."),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := s.llm.GenerateContent(ctx, content, llms.WithMaxTokens(400), llms.WithTemperature(0.3))
	if err != nil || len(resp.Choices) == 0 {
		log.Warn().Err(err).Msg("overall summary degraded to basic summary")
		return BasicOverallSummary(papers, userQuery)
	}

	return resp.Choices[0].Content
}

// BasicSummary is the non-AI fallback: the first sentences of the abstract.
func BasicSummary(paper pubmed.Paper) string {
	sentences := strings.Split(paper.Abstract, ". ")
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	basic := strings.Join(sentences, ". ")

	if basic != "" && !strings.HasSuffix(basic, ".") {
		basic += "."
	}
	if basic == "" {
		return "요약을 생성할 수 없습니다."
	}
	return basic
}

// BasicOverallSummary is the non-AI fallback for the aggregate summary.
func BasicOverallSummary(papers []PaperSummary, userQuery string) string {
	if len(papers) == 0 {
		return fmt.Sprintf("'%s'에 대한 관련 논문을 찾을 수 없습니다.", userQuery)
	}

	recent := 0
	for _, paper := range papers {
		if strings.Contains(paper.PublicationDate, "2023") || strings.Contains(paper.PublicationDate, "2024") {
			recent++
		}
	}

	summary := fmt.Sprintf("'%s'에 대해 총 %d개의 관련 논문을 찾았습니다.", userQuery, len(papers))
	if recent > 0 {
		summary += fmt.Sprintf(" 이 중 %d개는 최근(2023-2024년) 연구입니다.", recent)
	}
	summary += " 각 논문의 상세 내용을 확인하여 더 자세한 정보를 얻으실 수 있습니다."

	return summary
}
