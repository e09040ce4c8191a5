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
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.com/hanul-informatics/medsearch/lib"
	"gitlab.com/hanul-informatics/medsearch/lib/cache"
	"gitlab.com/hanul-informatics/medsearch/lib/cache/local"
	"gitlab.com/hanul-informatics/medsearch/lib/cache/remote"
	"gitlab.com/hanul-informatics/medsearch/lib/pubmed"
	"gitlab.com/hanul-informatics/medsearch/lib/service"
	"gitlab.com/hanul-informatics/medsearch/lib/summary"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

// config structure
type searchAPIConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Server   struct {
		HttpPort int `mapstructure:"http_port"`
	}
	Workers    int
	MaxResults int `mapstructure:"max_results"`
	Vocabulary struct {
		Path string
	}
	Cache struct {
		Backend string
		Redis   remote.RedisConfig
	}
	Pubmed pubmed.Config
	Openai summary.Config
}

var config searchAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/search-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
		},
		"workers":     8,
		"max_results": 10,
		"vocabulary": map[string]interface{}{
			"path": "",
		},
		"cache": map[string]interface{}{
			"backend": "none",
			"redis": map[string]interface{}{
				"host": "localhost",
				"port": 6379,
			},
		},
		"pubmed": map[string]interface{}{
			"search_url": "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi",
			"fetch_url":  "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi",
			"email":      "",
			"tool":       "medsearch",
			"max_papers": 20,
		},
		"openai": map[string]interface{}{
			"api_key": "",
			"model":   "gpt-3.5-turbo",
		},
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	vocabulary := vocab.Default()
	if config.Vocabulary.Path != "" {
		var err error
		vocabulary, err = vocab.Load(config.Vocabulary.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", config.Vocabulary.Path).Msg("could not load vocabulary")
		}
	}

	var store cache.Store
	switch config.Cache.Backend {
	case "redis":
		store = remote.NewRedisStore(config.Cache.Redis)
	default:
		store = local.New()
	}

	summarizer, err := summary.New(config.Openai)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create summarizer")
	}
	if !summarizer.Enabled() {
		log.Warn().Msg("no openai api key configured, paper summaries will be basic extracts")
	}

	papers := pubmed.NewClient(config.Pubmed, store)

	svc, err := service.New(vocabulary, papers, summarizer, config.Workers)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer svc.Close()

	r := gin.New()
	r.Use(gin.Recovery(), cors.Default(), gin.LoggerWithFormatter(lib.JsonLogFormatter))

	c := controller{service: svc, maxResults: config.MaxResults}
	s := server{controller: c}
	s.RegisterRoutes(r)
	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}
