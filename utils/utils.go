package utils

import (
	rndm "math/rand"
	"regexp"
	"strings"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-stable identifier.
func Slugify(name string) string {
	s := slugCleaner.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
