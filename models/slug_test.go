package models

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandToken(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]{3}$`)
	for i := 0; i < 100; i++ {
		token := randToken()
		assert.Regexp(t, valid, token)
	}
}

func TestNewCategorySlug(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "simple name", input: "Shoes", contains: "shoes"},
		{name: "name with spaces", input: "Winter Boots", contains: "winter-boots"},
		{name: "name with punctuation", input: "Bags & Luggage", contains: "bags"},
		{name: "empty name", input: "", contains: "pickbetter"},
	}

	urlSafe := regexp.MustCompile(`^[a-z0-9-]+$`)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewCategorySlug(tc.input)
			assert.NotEmpty(t, s)
			assert.Regexp(t, urlSafe, s)
			assert.Contains(t, strings.ToLower(s), tc.contains)
		})
	}
}

func TestNewCategorySlugDiffersPerCall(t *testing.T) {
	// The random token makes collisions for the same name unlikely.
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[NewCategorySlug("Shoes")] = true
	}
	assert.Greater(t, len(seen), 1)
}
