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

// Package service orchestrates a search request end to end: recognize
// entities in the user's text, synthesize a PubMed query, fetch candidate
// papers, summarize and score them in parallel, then filter, rank and
// truncate the results.
package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
	"gitlab.com/hanul-informatics/medsearch/lib/query"
	"gitlab.com/hanul-informatics/medsearch/lib/scoring"
	"gitlab.com/hanul-informatics/medsearch/lib/summary"
	"gitlab.com/hanul-informatics/medsearch/lib/text"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

// PaperSource finds and retrieves paper records.
type PaperSource interface {
	SearchAndFetch(ctx context.Context, query string, maxResults int) ([]pubmed.Paper, error)
	FetchOne(ctx context.Context, pmid string) (*pubmed.Paper, error)
}

// Summarizer produces per-paper and aggregate prose summaries.
type Summarizer interface {
	SummarizePaper(ctx context.Context, paper pubmed.Paper, userQuery string) string
	OverallSummary(ctx context.Context, papers []summary.PaperSummary, userQuery string) string
}

// ScoredPaper is a retrieved paper with its summary and relevance score.
type ScoredPaper struct {
	pubmed.Paper
	Summary        string  `json:"ai_summary"`
	RelevanceScore float64 `json:"relevance_score"`

	summaryRank float64
}

// Result is the full payload for one search request.
type Result struct {
	UserInput           string            `json:"user_input"`
	SearchQuery         string            `json:"search_query"`
	DetectedEntities    []analyzer.Entity `json:"detected_entities"`
	Interpretations     []string          `json:"interpretations"`
	Papers              []ScoredPaper     `json:"papers"`
	TotalPapersFound    int               `json:"total_papers_found"`
	FilteredPapersCount int               `json:"filtered_papers_count"`
	OverallSummary      string            `json:"overall_summary"`
	ProcessingTime      float64           `json:"processing_time"`
	Timestamp           string            `json:"timestamp"`
}

type Service struct {
	analyzer    *analyzer.Analyzer
	synthesizer *query.Synthesizer
	papers      PaperSource
	summarizer  Summarizer
	pool        *ants.Pool
}

func New(v *vocab.Vocabulary, papers PaperSource, summarizer Summarizer, workers int) (*Service, error) {
	if workers <= 0 {
		workers = 8
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}

	return &Service{
		analyzer:    analyzer.New(v),
		synthesizer: query.New(v),
		papers:      papers,
		summarizer:  summarizer,
		pool:        pool,
	}, nil
}

func (s *Service) Close() {
	s.pool.Release()
}

// Search analyzes the user's text and returns scored, summarized papers.
// Retrieval failures degrade to an empty paper list rather than an error.
func (s *Service) Search(ctx context.Context, input string, maxResults int) *Result {
	start := time.Now()
	requestID := uuid.New().String()

	input = text.Normalize(input)
	entities := s.analyzer.Recognize(input)
	searchQuery := s.synthesizer.Synthesize(entities, input)
	interpretations := s.analyzer.Interpret(entities)

	log.Info().
		Str("request_id", requestID).
		Int("entities", len(entities)).
		Str("query", searchQuery).
		Msg("search request")

	// Over-fetch so relevance filtering still leaves enough papers.
	papers, err := s.papers.SearchAndFetch(ctx, searchQuery, maxResults*2)
	if err != nil {
		log.Warn().Str("request_id", requestID).Err(err).Msg("paper retrieval failed")
		papers = nil
	}

	scored := s.summarizeAndScore(ctx, papers, input)
	admitted := admitPapers(scored, entities, input)

	sort.SliceStable(admitted, func(i, j int) bool {
		if admitted[i].RelevanceScore != admitted[j].RelevanceScore {
			return admitted[i].RelevanceScore > admitted[j].RelevanceScore
		}
		return admitted[i].summaryRank > admitted[j].summaryRank
	})
	if len(admitted) > maxResults {
		admitted = admitted[:maxResults]
	}

	overall := s.summarizer.OverallSummary(ctx, paperSummaries(admitted), input)

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100

	return &Result{
		UserInput:           input,
		SearchQuery:         searchQuery,
		DetectedEntities:    entities,
		Interpretations:     interpretations,
		Papers:              admitted,
		TotalPapersFound:    len(papers),
		FilteredPapersCount: len(admitted),
		OverallSummary:      overall,
		ProcessingTime:      elapsed,
		Timestamp:           start.Format("2006-01-02 15:04:05"),
	}
}

// summarizeAndScore fans the per-paper work out on the pool and reassembles
// results in input order. Each task is independent of the others.
func (s *Service) summarizeAndScore(ctx context.Context, papers []pubmed.Paper, input string) []ScoredPaper {
	scored := make([]ScoredPaper, len(papers))
	var wg sync.WaitGroup

	for i := range papers {
		i := i
		paper := papers[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scored[i] = ScoredPaper{
				Paper:       paper,
				Summary:     s.summarizer.SummarizePaper(ctx, paper, input),
				summaryRank: scoring.Summarization(paper.Title, paper.Abstract, input),
			}
		}
		if err := s.pool.Submit(task); err != nil {
			task()
		}
	}

	wg.Wait()
	return scored
}

// PaperDetail looks up a single paper by PMID.
func (s *Service) PaperDetail(ctx context.Context, pmid string) (*pubmed.Paper, error) {
	return s.papers.FetchOne(ctx, pmid)
}

// SimilarPapers finds papers related to the given one by searching on
// keywords pulled from its title and abstract.
func (s *Service) SimilarPapers(ctx context.Context, pmid string, maxResults int) ([]pubmed.Paper, error) {
	original, err := s.papers.FetchOne(ctx, pmid)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, nil
	}

	keywords := text.Keywords(original.Title+" "+original.Abstract, 5)
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	if len(keywords) == 0 {
		return nil, nil
	}

	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = `"` + kw + `"`
	}
	searchQuery := strings.Join(quoted, " AND ")

	// One extra so the source paper can be dropped from its own results.
	papers, err := s.papers.SearchAndFetch(ctx, searchQuery, maxResults+1)
	if err != nil {
		return nil, err
	}

	similar := make([]pubmed.Paper, 0, maxResults)
	for _, paper := range papers {
		if paper.PMID == pmid {
			continue
		}
		similar = append(similar, paper)
		if len(similar) == maxResults {
			break
		}
	}
	return similar, nil
}

func paperSummaries(papers []ScoredPaper) []summary.PaperSummary {
	summaries := make([]summary.PaperSummary, len(papers))
	for i, paper := range papers {
		summaries[i] = summary.PaperSummary{
			Title:           paper.Title,
			Summary:         paper.Summary,
			PublicationDate: paper.PublicationDate,
		}
	}
	return summaries
}
