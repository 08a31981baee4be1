package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCriteria(t *testing.T) {
	c := ParseCriteria("  engineer ", "", " go, Rust ,,GO ")
	assert.Equal(t, "engineer", c.Title)
	assert.Equal(t, "", c.Location)
	assert.Equal(t, []string{"go", "Rust"}, c.Tags)
	assert.False(t, c.IsEmpty())

	assert.True(t, ParseCriteria(" ", "", " , ").IsEmpty())
}

func TestMatches_TitleSubstringIgnoresCase(t *testing.T) {
	c := Criteria{Title: "engineer"}

	assert.True(t, c.Matches(Document{Title: "Senior Software Engineer"}))
	// tags are not consulted for the title filter
	assert.False(t, c.Matches(Document{Title: "Manager", Tags: []string{"engineer"}}))
}

func TestMatches_LocationSubstring(t *testing.T) {
	c := Criteria{Location: "berlin"}

	assert.True(t, c.Matches(Document{Location: "Mitte, Berlin, Germany"}))
	assert.False(t, c.Matches(Document{Location: "Munich"}))
}

func TestMatches_TagsAreUnion(t *testing.T) {
	c := ParseCriteria("", "", "go,rust")

	assert.True(t, c.Matches(Document{Tags: []string{"Go"}}))
	assert.True(t, c.Matches(Document{Tags: []string{"rust", "wasm"}}))
	assert.False(t, c.Matches(Document{Tags: []string{"python"}}))
	assert.False(t, c.Matches(Document{}))
}

func TestMatches_TagsAreExactNotSubstring(t *testing.T) {
	c := Criteria{Tags: []string{"go"}}
	assert.False(t, c.Matches(Document{Tags: []string{"golang"}}))
}

func TestMatches_FiltersCombineWithAnd(t *testing.T) {
	c := Criteria{Title: "engineer", Location: "remote", Tags: []string{"go"}}

	assert.True(t, c.Matches(Document{Title: "Engineer", Location: "Remote", Tags: []string{"go"}}))
	assert.False(t, c.Matches(Document{Title: "Engineer", Location: "Remote", Tags: []string{"java"}}))
	assert.False(t, c.Matches(Document{Title: "Engineer", Location: "Paris", Tags: []string{"go"}}))
}

func TestMatches_EmptyCriteriaMatchAll(t *testing.T) {
	assert.True(t, Criteria{}.Matches(Document{}))
}

func TestLowerTags(t *testing.T) {
	assert.Equal(t, []string{"go", "rust"}, Criteria{Tags: []string{"Go", "RUST"}}.LowerTags())
}
