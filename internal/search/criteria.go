package search

import "strings"

// Criteria narrows a job listing. Every field is optional; an empty field does
// not filter. Non-empty fields are combined with AND, the tag list with OR.
type Criteria struct {
	Title    string
	Location string
	Tags     []string
}

// Document is the searchable projection of a job.
type Document struct {
	Title    string
	Location string
	Tags     []string
}

// ParseCriteria builds criteria from raw query values. tags is a comma
// separated list.
func ParseCriteria(title, location, tags string) Criteria {
	return Criteria{
		Title:    strings.TrimSpace(title),
		Location: strings.TrimSpace(location),
		Tags:     SplitTags(tags),
	}
}

// SplitTags splits a comma separated list, trimming entries and dropping
// empty and repeated ones (case-insensitively).
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (c Criteria) IsEmpty() bool {
	return c.Title == "" && c.Location == "" && len(c.Tags) == 0
}

// LowerTags returns the requested tags lowercased, for case-insensitive
// comparison.
func (c Criteria) LowerTags() []string {
	out := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		out = append(out, strings.ToLower(t))
	}
	return out
}

// Matches evaluates the criteria in process.
func (c Criteria) Matches(d Document) bool {
	if c.Title != "" && !containsFold(d.Title, c.Title) {
		return false
	}
	if c.Location != "" && !containsFold(d.Location, c.Location) {
		return false
	}
	if len(c.Tags) > 0 && !anyTagMatches(d.Tags, c.Tags) {
		return false
	}
	return true
}

func anyTagMatches(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), w) {
				return true
			}
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
