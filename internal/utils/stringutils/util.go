package stringutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsUpperLetter reports whether s starts with an upper case letter, i.e. names an exported identifier.
func IsUpperLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// LowerFirst lower cases the first letter: UserName -> userName
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// ToPascalCase one-to-many -> OneToMany, created_at -> CreatedAt
func ToPascalCase(s string, sep string) string {
	parts := strings.Split(s, sep)
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, part := range parts {
		if part != "" {
			builder.WriteString(UpperFirst(part))
		}
	}

	return builder.String()
}
