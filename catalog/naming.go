package catalog

import (
	"strings"
	"unicode"
)

// Spelled-out prefixes for identifiers that would otherwise start with a
// digit. Go identifiers cannot, so "3d_rotation" becomes "ThreeDRotation".
var digitWords = map[byte]string{
	'0': "Zero",
	'1': "One",
	'2': "Two",
	'3': "Three",
	'4': "Four",
	'5': "Five",
	'6': "Six",
	'7': "Seven",
	'8': "Eight",
	'9': "Nine",
}

// GoName converts a raw catalog name (snake_case or kebab-case) to the
// exported Go identifier used in the generated table. A leading digit is
// spelled out: "3d_rotation" -> "ThreeDRotation", "360" -> "Three60".
func GoName(raw string) string {
	name := toPascalCase(raw)
	if name == "" {
		return name
	}
	if word, ok := digitWords[name[0]]; ok {
		rest := name[1:]
		// "3d" pascal-cases to "3d"; once the digit is spelled out the next
		// letter starts a word of its own
		if rest != "" && rest[0] >= 'a' && rest[0] <= 'z' {
			rest = strings.ToUpper(rest[:1]) + rest[1:]
		}
		name = word + rest
	}
	return name
}

// toPascalCase converts snake_case or kebab-case to PascalCase.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			runes := []rune(part)
			result.WriteRune(unicode.ToUpper(runes[0]))
			result.WriteString(string(runes[1:]))
		}
	}

	return result.String()
}
