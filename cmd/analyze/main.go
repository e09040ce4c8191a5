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

// analyze recognizes medical entities in text given as arguments or on
// stdin and prints them, their interpretations and the synthesized PubMed
// query as JSON. Useful for inspecting recognition behavior without
// running the API.
package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
	"gitlab.com/hanul-informatics/medsearch/lib/query"
	"gitlab.com/hanul-informatics/medsearch/lib/service"
	"gitlab.com/hanul-informatics/medsearch/lib/text"
	"gitlab.com/hanul-informatics/medsearch/lib/vocab"
)

type analysis struct {
	Input           string            `json:"input"`
	Entities        []analyzer.Entity `json:"entities"`
	Interpretations []string          `json:"interpretations"`
	SearchQuery     string            `json:"search_query"`
	HealthTips      []string          `json:"health_tips"`
}

func main() {
	vocabPath := pflag.String("vocabulary", "", "Path to a vocabulary yml file extending the built-in one.")
	pflag.Parse()

	input := strings.Join(pflag.Args(), " ")
	if input == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		input = string(b)
	}
	input = text.Normalize(input)
	if input == "" {
		log.Fatal().Msg("no input text given")
	}

	vocabulary := vocab.Default()
	if *vocabPath != "" {
		var err error
		vocabulary, err = vocab.Load(*vocabPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *vocabPath).Msg("could not load vocabulary")
		}
	}

	a := analyzer.New(vocabulary)
	entities := a.Recognize(input)

	result := analysis{
		Input:           input,
		Entities:        entities,
		Interpretations: a.Interpret(entities),
		SearchQuery:     query.New(vocabulary).Synthesize(entities, input),
		HealthTips:      service.TipsFor(entities),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		log.Fatal().Err(err).Send()
	}
}
