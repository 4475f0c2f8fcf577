package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "node js", Normalize("Node.js"))
	assert.Equal(t, "c++", Normalize("C++"))
	assert.Equal(t, "c#", Normalize("c#"))
	assert.Equal(t, "rest api", Normalize("  REST/API  "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("!!!"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Node.js", "  REST  API ", "C++", "sql", "Réact", "a---b"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "SQL", DisplayName("sql"))
	assert.Equal(t, "SQL", DisplayName("  SQL "))
	assert.Equal(t, "MongoDB", DisplayName("mongodb"))
	// only the "api" token is in the override table; "rest" title-cases
	assert.Equal(t, "Rest API", DisplayName("rest api"))
	assert.Equal(t, "System Design", DisplayName("system DESIGN"))
	assert.Equal(t, "React", DisplayName("react"))
	assert.Equal(t, "", DisplayName("   "))
}

func TestDedupeKeepsFirstSeenOrder(t *testing.T) {
	out := Dedupe([]string{"React", "react", "Node.js", "node js", "SQL", ""})
	assert.Equal(t, []string{"React", "Node.js", "SQL"}, out)
}

func TestDedupeHasNoNormalizedDuplicates(t *testing.T) {
	out := Dedupe([]string{"SQL", "sql!", " s q l ", "aws", "AWS", "Css"})
	seen := map[string]bool{}
	for _, entry := range out {
		token := Normalize(entry)
		assert.False(t, seen[token], "duplicate token %q", token)
		seen[token] = true
	}
}
