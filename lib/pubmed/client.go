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

// Package pubmed queries the NCBI eutils API: esearch resolves a boolean
// query to PMIDs, efetch resolves PMIDs to article records. Fetched records
// are cached by PMID through a cache.Store.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/hanul-informatics/medsearch/lib/cache"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	SearchURL string `mapstructure:"search_url"`
	FetchURL  string `mapstructure:"fetch_url"`
	Email     string `mapstructure:"email"`
	Tool      string `mapstructure:"tool"`
	MaxPapers int    `mapstructure:"max_papers"`
}

type Client struct {
	conf       Config
	httpClient HttpClient
	store      cache.Store
}

func NewClient(conf Config, store cache.Store) *Client {
	return &Client{
		conf:       conf,
		httpClient: http.DefaultClient,
		store:      store,
	}
}

// Search returns the PMIDs matching query, most relevant first.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.conf.MaxPapers
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))
	params.Set("retmode", "xml")
	params.Set("sort", "relevance")
	params.Set("email", c.conf.Email)
	params.Set("tool", c.conf.Tool)

	body, err := c.get(ctx, c.conf.SearchURL, params)
	if err != nil {
		return nil, err
	}

	var result esearchResult
	if err := xml.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return result.IDs, nil
}

// Fetch resolves PMIDs to full article records, serving cached records where
// possible and fetching the remainder in one efetch call. Result order
// follows the fetch response for uncached records, then cached ones.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]Paper, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	var cached []Paper
	missing := make([]string, 0, len(pmids))
	for _, pmid := range pmids {
		if paper, ok := c.cachedPaper(pmid); ok {
			cached = append(cached, paper)
		} else {
			missing = append(missing, pmid)
		}
	}

	if len(missing) == 0 {
		return cached, nil
	}

	// NCBI asks unauthenticated clients to stay under 3 requests per second
	time.Sleep(100 * time.Millisecond)

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(missing, ","))
	params.Set("retmode", "xml")
	params.Set("rettype", "abstract")
	params.Set("email", c.conf.Email)
	params.Set("tool", c.conf.Tool)

	body, err := c.get(ctx, c.conf.FetchURL, params)
	if err != nil {
		return nil, err
	}

	fetched, err := parseArticles(body)
	if err != nil {
		return nil, err
	}
	for _, paper := range fetched {
		c.cachePaper(paper)
	}

	return append(fetched, cached...), nil
}

// FetchOne returns the record for a single PMID, or nil when unknown.
func (c *Client) FetchOne(ctx context.Context, pmid string) (*Paper, error) {
	papers, err := c.Fetch(ctx, []string{pmid})
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, nil
	}
	return &papers[0], nil
}

// SearchAndFetch chains Search and Fetch.
func (c *Client) SearchAndFetch(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	pmids, err := c.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(pmids) == 0 {
		return nil, nil
	}
	return c.Fetch(ctx, pmids)
}

func (c *Client) get(ctx context.Context, baseURL string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pubmed: unexpected status %d from %s", resp.StatusCode, baseURL)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) cachedPaper(pmid string) (Paper, bool) {
	if c.store == nil {
		return Paper{}, false
	}
	b, ok, err := c.store.Get(cacheKey(pmid))
	if err != nil || !ok {
		return Paper{}, false
	}
	var paper Paper
	if err := json.Unmarshal(b, &paper); err != nil {
		return Paper{}, false
	}
	return paper, true
}

func (c *Client) cachePaper(paper Paper) {
	if c.store == nil {
		return
	}
	b, err := json.Marshal(paper)
	if err != nil {
		return
	}
	if err := c.store.Set(cacheKey(paper.PMID), b); err != nil {
		log.Warn().Err(err).Str("pmid", paper.PMID).Msg("could not cache paper")
	}
}

func cacheKey(pmid string) string {
	return "paper:" + pmid
}
