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

package main

import (
	"context"

	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
	"gitlab.com/hanul-informatics/medsearch/lib/service"
)

type controller struct {
	service    *service.Service
	maxResults int
}

func (c controller) Search(ctx context.Context, query string, maxResults int) *service.Result {
	if maxResults <= 0 || maxResults > 50 {
		maxResults = c.maxResults
	}
	return c.service.Search(ctx, query, maxResults)
}

func (c controller) PaperDetail(ctx context.Context, pmid string) (*pubmed.Paper, error) {
	return c.service.PaperDetail(ctx, pmid)
}

func (c controller) SimilarPapers(ctx context.Context, pmid string, maxResults int) ([]pubmed.Paper, error) {
	if maxResults <= 0 || maxResults > 20 {
		maxResults = 5
	}
	return c.service.SimilarPapers(ctx, pmid, maxResults)
}
