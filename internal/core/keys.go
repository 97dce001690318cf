package core

import "unicode"

// NormalizeKey folds single-letter keys to lower case so bindings match
// regardless of shift or caps lock. Named keys ("up", "space", "enter",
// "ctrl+c") are returned verbatim.
func NormalizeKey(key string) string {
	r := []rune(key)
	if len(r) == 1 && unicode.IsLetter(r[0]) {
		return string(unicode.ToLower(r[0]))
	}
	return key
}
