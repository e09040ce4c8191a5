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

package text

import (
	"strings"

	"github.com/blevesearch/segment"
)

// stopwords are frequent paper-prose words that make poor search keywords.
var stopwords = map[string]struct{}{
	"with": {}, "from": {}, "they": {}, "this": {}, "that": {}, "were": {},
	"been": {}, "have": {}, "more": {}, "such": {}, "also": {}, "than": {},
	"only": {}, "these": {}, "may": {}, "can": {}, "between": {}, "after": {},
	"before": {}, "during": {}, "study": {}, "studies": {}, "analysis": {},
	"results": {}, "methods": {}, "patients": {}, "data": {}, "using": {},
	"used": {}, "show": {}, "showed": {}, "found": {}, "observed": {},
}

// Keywords extracts up to max search-keyword candidates from text: English
// word tokens of at least 4 letters that are not stopwords, lowercased, in
// order of appearance.
func Keywords(text string, max int) []string {
	segmenter := segment.NewWordSegmenterDirect([]byte(strings.ToLower(text)))

	var keywords []string
	for segmenter.Segment() {
		if segmenter.Type() != segment.Letter {
			continue
		}
		token := segmenter.Text()
		if len(token) < 4 || !isASCIIAlpha(token) {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) >= max {
			break
		}
	}

	return keywords
}

func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
