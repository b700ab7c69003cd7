package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the String value of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SnakeCase converts a Go identifier to snake_case ("HTTPStatus" -> "http_status").
func SnakeCase(ident string) string {
	runes := []rune(ident)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// LowerFirst lower-cases the first rune of ident ("TestEnum" -> "testEnum").
func LowerFirst(ident string) string {
	if ident == "" {
		return ""
	}

	runes := []rune(ident)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
