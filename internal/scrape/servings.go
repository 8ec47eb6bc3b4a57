package scrape

import (
	"regexp"
	"strconv"
)

// DefaultServings is used when a yield string carries no number.
const DefaultServings = 4

var firstNumberRe = regexp.MustCompile(`\d+`)

// ParseServings returns the first whole number in a yield string such as
// "7 rolls" or "Serves 4-6".
func ParseServings(yield string) int {
	m := firstNumberRe.FindString(yield)
	if m == "" {
		return DefaultServings
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return DefaultServings
	}
	return n
}
