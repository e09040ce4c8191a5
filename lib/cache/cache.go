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

// Package cache stores fetched paper records keyed by PMID so repeated detail
// lookups and similar-paper searches do not re-hit the upstream API.
// Relevance scores are never cached: the same paper scores differently
// against different queries.
package cache

// Store is a byte-oriented key/value store. Get's second return is false on a
// miss; a miss is not an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte) error
	Ready() bool
}
