package repository

import "strings"

// likePattern builds the argument for a case-insensitive substring
// match: the column side is lowered in SQL, the term side here.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
