package worm

import (
	"math"
	"regexp"
)

// namePattern: uppercase first letter, then at least one letter, space, double quote or apostrophe
var namePattern = regexp.MustCompile(`^[A-Z][A-Za-z "']+$`)

// IsValidPosition reports whether p can be stored as a coordinate
func IsValidPosition(p float64) bool {
	return !math.IsNaN(p)
}

// IsValidDirection reports whether d can be stored as a facing angle
func IsValidDirection(d float64) bool {
	return !math.IsNaN(d)
}

// IsValidRadius reports whether r is at least lowerBound; NaN is never valid
func IsValidRadius(r, lowerBound float64) bool {
	return r >= lowerBound
}

// IsValidName reports whether s is an acceptable worm name
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}
