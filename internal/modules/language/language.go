// Package language classifies input text into one of the two languages the
// relay translates between. It is a script check, not full language
// identification: a single Arabic-block rune is enough.
package language

// Language is the detected source language of a request.
type Language string

const (
	Arabic  Language = "Arabic"
	English Language = "English"
)

// Opposite returns the complementary language, the translation target.
func (l Language) Opposite() Language {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Detect returns Arabic if text contains at least one rune in the Arabic
// Unicode block (U+0600–U+06FF), otherwise English. Empty input is English.
func Detect(text string) Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return Arabic
		}
	}
	return English
}
