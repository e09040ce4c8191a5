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

package service

import (
	"strings"

	"gitlab.com/hanul-informatics/medsearch/lib/analyzer"
)

// TipsFor returns lifestyle guidance matched to the detected entities, with
// a generic checkup reminder when nothing specific applies.
func TipsFor(entities []analyzer.Entity) []string {
	var tips []string

	for _, entity := range entities {
		lower := strings.ToLower(entity.Text)

		switch entity.Kind {
		case analyzer.Test:
			if strings.Contains(lower, "crp") {
				tips = append(tips, "💡 CRP 수치가 높다면 염증을 줄이기 위해 금연, 규칙적인 운동, 건강한 식단을 유지하세요.")
			} else if strings.Contains(lower, "hba1c") || strings.Contains(lower, "glucose") {
				tips = append(tips, "💡 혈당 관리를 위해 탄수화물 섭취를 조절하고 정기적인 운동을 하세요.")
			} else if strings.Contains(lower, "cholesterol") {
				tips = append(tips, "💡 콜레스테롤 관리를 위해 포화지방 섭취를 줄이고 오메가-3가 풍부한 음식을 섭취하세요.")
			} else if strings.Contains(lower, "bp") {
				tips = append(tips, "💡 혈압 관리를 위해 나트륨 섭취를 줄이고 스트레스를 관리하세요.")
			}
		case analyzer.Disease:
			if strings.Contains(lower, "당뇨병") || strings.Contains(lower, "diabetes") {
				tips = append(tips, "💡 당뇨병 관리: 정기적인 혈당 측정, 균형잡힌 식단, 규칙적인 운동이 중요합니다.")
			} else if strings.Contains(lower, "고혈압") || strings.Contains(lower, "hypertension") {
				tips = append(tips, "💡 고혈압 관리: 염분 섭취 제한, 정기적인 혈압 측정, 금연이 필요합니다.")
			}
		}
	}

	if len(tips) == 0 {
		tips = append(tips, "💡 정기적인 건강검진과 의사와의 상담을 통해 건강을 관리하세요.")
	}

	return tips
}
