package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minCitySimilarity = 0.6

// Hàm chuẩn hóa chuỗi: bỏ dấu, chữ thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

type scoredCity struct {
	name  string
	score float64
}

// SuggestCities gợi ý thành phố gần đúng với query (không phân biệt dấu).
// Query rỗng trả về limit thành phố đầu tiên.
func SuggestCities(query string, cities []string, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	q := normalizeInput(query)
	if q == "" {
		return slices.Clone(cities[:min(limit, len(cities))])
	}

	byKey := make(map[string]string, len(cities))
	keys := make([]string, 0, len(cities))
	for _, city := range cities {
		key := normalizeInput(city)
		if key == "" {
			continue
		}
		if _, ok := byKey[key]; !ok {
			byKey[key] = city
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return []string{}
	}

	nearby := map[string]bool{}
	for _, key := range closestmatch.New(keys, []int{2, 3}).ClosestN(q, limit) {
		nearby[key] = true
	}

	var scored []scoredCity
	for _, key := range keys {
		var score float64
		switch {
		case strings.HasPrefix(key, q):
			score = 2
		case strings.Contains(key, q):
			score = 1.5
		default:
			score = calculateSimilarity(q, key)
			if nearby[key] {
				score += 0.1
			}
		}
		if score >= minCitySimilarity {
			scored = append(scored, scoredCity{name: byKey[key], score: score})
		}
	}

	slices.SortFunc(scored, func(a, b scoredCity) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(limit, len(scored)))
	for _, s := range scored[:min(limit, len(scored))] {
		result = append(result, s.name)
	}
	return result
}
