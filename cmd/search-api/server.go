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
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
	"gitlab.com/hanul-informatics/medsearch/lib/service"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type searchController interface {
	Search(ctx context.Context, query string, maxResults int) *service.Result
	PaperDetail(ctx context.Context, pmid string) (*pubmed.Paper, error)
	SimilarPapers(ctx context.Context, pmid string, maxResults int) ([]pubmed.Paper, error)
}

type server struct {
	controller searchController
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/search", s.Search)
	r.GET("/search", s.SearchByQueryParam)
	r.GET("/papers/:pmid", s.PaperDetail)
	r.GET("/similar/:pmid", s.SimilarPapers)
	r.GET("/health", s.Health)
}

func (s server) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, NewHttpError(400, errors.New("invalid request body - must be json with a query field")))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		handleError(c, NewHttpError(400, errors.New("query must not be empty")))
		return
	}

	c.JSON(200, s.controller.Search(c.Request.Context(), req.Query, req.MaxResults))
}

func (s server) SearchByQueryParam(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok || strings.TrimSpace(query) == "" {
		handleError(c, NewHttpError(400, errors.New("you must set the q query parameter")))
		return
	}

	c.JSON(200, s.controller.Search(c.Request.Context(), query, maxResultsParam(c)))
}

func (s server) PaperDetail(c *gin.Context) {
	pmid := c.Param("pmid")
	if !validPMID(pmid) {
		handleError(c, NewHttpError(400, errors.New("pmid must be numeric")))
		return
	}

	paper, err := s.controller.PaperDetail(c.Request.Context(), pmid)
	if err != nil {
		handleError(c, err)
		return
	}
	if paper == nil {
		handleError(c, NewHttpError(404, errors.New("paper not found")))
		return
	}

	c.JSON(200, paper)
}

func (s server) SimilarPapers(c *gin.Context) {
	pmid := c.Param("pmid")
	if !validPMID(pmid) {
		handleError(c, NewHttpError(400, errors.New("pmid must be numeric")))
		return
	}

	papers, err := s.controller.SimilarPapers(c.Request.Context(), pmid, maxResultsParam(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, papers)
}

func (s server) Health(c *gin.Context) {
	c.JSON(200, map[string]string{"status": "ok"})
}

func maxResultsParam(c *gin.Context) int {
	raw, ok := c.GetQuery("max_results")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func validPMID(pmid string) bool {
	if pmid == "" {
		return false
	}
	for _, r := range pmid {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
