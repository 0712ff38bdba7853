// Package prompt builds the instruction string sent to the generation
// backend. Construction is pure string formatting: no I/O, no state.
package prompt

import (
	"fmt"

	"github.com/Karimk94/translator-core/internal/modules/language"
)

// Task selects which instruction template is applied to the input text.
type Task string

const (
	TaskTranslate Task = "translate"
	TaskTokenize  Task = "tokenize"
	TaskRephrase  Task = "rephrase"
)

// DefaultTask is applied when the request omits the task field.
const DefaultTask = TaskTranslate

const arabicDiacriticsRule = "1. **ABSOLUTELY CRITICAL**: Your response MUST NOT contain any Arabic diacritics (Tashkeel / formations).\n" +
	"   - **Example (Good)**: \"مرحبا\"\n" +
	"2. **CRITICAL**: Do NOT output any question mark `?` characters."

const toArabicRules = `3. Your response MUST contain ONLY the translated text.
4. Do NOT add any comments, explanations, or introductory phrases.
5. **CRITICAL**: You MUST convert every single %s word into %s.`

const toEnglishRules = `1. Your response MUST contain ONLY the translated text.
2. Do NOT add any comments.
3. **CRITICAL**: You MUST convert every single %s word into %s.`

const translateTemplate = `<start_of_turn>user
You are a direct translation engine. Translate the provided %s text to %s.

Follow these rules exactly:
%s
%s

### TASK ###
%s Text: "%s"<end_of_turn>
<start_of_turn>model
`

const tokenizeTemplate = `<start_of_turn>user
You are a JSON output machine. Your only function is to output a specific JSON structure. Follow these steps exactly:

1.  Analyze this %s text: "%s"
2.  Extract the key nouns, entities, and concepts for use as search tags.
3.  **All tags MUST be in %s.** Do not mix languages.
4.  **Correct any spelling errors and standardize abbreviations.**
5.  Remove all stop words, non-essential words, and duplicate entries.
6.  If generating %s tags, do NOT include any diacritics (Tashkeel / formations).
7.  Output **NOTHING** except for the completed JSON structure below. Do not use markdown.

COPY AND PASTE THIS TEMPLATE, THEN FILL IT IN:
{"%s": []}

Your entire response must be only the filled-out template.<end_of_turn>
<start_of_turn>model
`

const rephraseTemplate = `<start_of_turn>user
You are a professional editor. Your task is to rewrite the following %s text to be clearer, more concise, and more professional, while strictly preserving the original meaning.

Rules:
1. Do NOT change the language. Keep it in %s.
2. Output ONLY the rephrased text. No conversational filler.
3. If the text is Arabic, do NOT use diacritics (Tashkeel).

Text: "%s"<end_of_turn>
<start_of_turn>model
`

// Build returns the backend instruction for (text, task, source). An
// unrecognized task returns the input text unchanged; this is a defined
// fallback, not an error.
func Build(text string, task Task, source language.Language) string {
	switch task {
	case TaskTranslate:
		return buildTranslate(text, source)
	case TaskTokenize:
		return buildTokenize(text, source)
	case TaskRephrase:
		return buildRephrase(text, source)
	}
	return text
}

func buildTranslate(text string, source language.Language) string {
	target := source.Opposite()

	// The no-diacritics and no-question-mark rules only matter when the
	// output script is Arabic; for English targets the rule list renumbers
	// from 1.
	diacriticsRule := ""
	otherRules := fmt.Sprintf(toEnglishRules, source, target)
	if target == language.Arabic {
		diacriticsRule = arabicDiacriticsRule
		otherRules = fmt.Sprintf(toArabicRules, source, target)
	}

	return fmt.Sprintf(translateTemplate, source, target, diacriticsRule, otherRules, source, text)
}

func buildTokenize(text string, source language.Language) string {
	tagLang := language.English
	jsonKey := "english_tags"
	if source == language.Arabic {
		tagLang = language.Arabic
		jsonKey = "arabic_tags"
	}
	return fmt.Sprintf(tokenizeTemplate, source, text, tagLang, tagLang, jsonKey)
}

func buildRephrase(text string, source language.Language) string {
	return fmt.Sprintf(rephraseTemplate, source, source, text)
}
