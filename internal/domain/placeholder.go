package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// indexedForm matches placeholders already in wire form ({{1}}, {{2}}, ...).
// Such spans are skipped during extraction, so running ExtractExamples over
// an already-transformed string is a no-op.
const indexedForm = `\{\{\d+\}\}`

// ExtractExamples scans text left to right for inline example placeholders
// delimited by d and returns the text with each placeholder replaced by its
// positional wire form ("{{1}}", "{{2}}", ...) together with the example
// values in order of appearance.
//
// Replacement is keyed by the literal placeholder text, not by position: if
// the same literal appears more than once, every occurrence is replaced with
// the index of its first occurrence, and the example list still carries one
// entry per occurrence.
//
// There is no escape mechanism for delimiter characters meant literally.
func ExtractExamples(text string, d Delimiters) (string, []string) {
	d = d.orDefault()
	re := regexp.MustCompile(indexedForm + `|` + regexp.QuoteMeta(d.Start) + `(.*?)` + regexp.QuoteMeta(d.End))

	var examples []string
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[2] < 0 {
			// An already-indexed span, leave it alone.
			continue
		}
		examples = append(examples, text[m[2]:m[3]])
	}
	for i, example := range examples {
		text = strings.ReplaceAll(text, d.Start+example+d.End, fmt.Sprintf("{{%d}}", i+1))
	}
	return text, examples
}
