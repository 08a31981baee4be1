package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"jobboard/internal/search"
)

const jobsSearchKeyPrefix = "jobs:search:"

// JobsSearchPattern matches every cached search result.
const JobsSearchPattern = jobsSearchKeyPrefix + "*"

// JobsSearchGenerationKey holds the search generation. It sits outside
// JobsSearchPattern so invalidation never resets it.
const JobsSearchGenerationKey = "jobs:search-gen"

type jobSearchCacheKeyInput struct {
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

// normalizeSearchValue folds only what the matcher ignores. Inner whitespace
// is significant for substring matching and is kept.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// JobsSearchCacheKey derives a stable key for c within generation gen. Case,
// surrounding whitespace and tag order do not change the key.
func JobsSearchCacheKey(gen int64, c search.Criteria) string {
	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		t = normalizeSearchValue(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	sort.Strings(tags)

	in := jobSearchCacheKeyInput{
		Title:    normalizeSearchValue(c.Title),
		Location: normalizeSearchValue(c.Location),
		Tags:     tags,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchKeyPrefix + strconv.FormatInt(gen, 10) + ":" + hex.EncodeToString(sum[:])
}
