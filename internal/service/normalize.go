package service

import "strings"

// Normalize lowercases a raw ingredient name and collapses its whitespace, so
// "  Garlic   Powder " and "garlic powder" name the same ingredient.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
