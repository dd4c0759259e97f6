package utils

import (
	"math"
	rndm "math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- ID Validation ---

var idRe = regexp.MustCompile(`^[A-Za-z0-9_]{8,32}$`)

// ValidateID reports whether s looks like one of our generated entity ids.
func ValidateID(s string) bool {
	return idRe.MatchString(s)
}

// --- Slugs ---

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses runs of non-alphanumerics
// into single hyphens.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// --- Money ---

// Round2 rounds to two decimal places, half-up.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// RoundMean returns the half-up rounded mean of the values, or 0 for an
// empty slice.
func RoundMean(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return int(math.Floor(float64(sum)/float64(len(vals)) + 0.5))
}
