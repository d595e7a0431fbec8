package mysql

import "strings"

// escapeLike escapes LIKE wildcards in a user-supplied search needle and
// lowercases it for the case-insensitive match.
func escapeLike(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
