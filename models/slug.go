package models

import (
	"math/rand"

	"github.com/gosimple/slug"
)

const slugTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// slugSeparator sits between the random token and the slugified name.
const slugSeparator = "-pickBetter"

// randToken returns a 3-character token of lowercase letters and digits,
// used to disambiguate auto-generated category slugs.
func randToken() string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = slugTokenAlphabet[rand.Intn(len(slugTokenAlphabet))]
	}
	return string(b)
}

// NewCategorySlug derives a URL-safe slug from a category name, prefixed
// with a random token. The result is never empty, even for an empty name.
func NewCategorySlug(name string) string {
	return slug.Make(randToken() + slugSeparator + name)
}
