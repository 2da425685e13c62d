package util

import "unicode/utf8"

const ellipsis = "..."

// TruncateStringUtf8 limits the string length in bytes without splitting a multibyte character.
func TruncateStringUtf8(s string, lenMax int) string {
	if len(s) <= lenMax {
		return s
	}
	for i := lenMax - len(ellipsis); i > 0; i-- {
		if utf8.RuneStart(s[i]) {
			return s[:i] + ellipsis
		}
	}
	return ""
}
