// internal/search/highlight.go
//
// Snippet extraction and match highlighting.
//
// Matching is a case-insensitive LITERAL substring comparison.  The term
// is never compiled into a regular expression, so metacharacters in a
// query highlight exactly like any other character.  Matching walks
// runes and folds each one, so offsets always land on rune boundaries
// of the ORIGINAL text even when a fold changes byte length (İ → i).
// Non-match text is HTML-escaped before the <mark> wrappers are added,
// so a snippet is safe to inject into a template.
package search

import (
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnippetRadius is the number of runes kept on each side of the first
// match when a long value is clipped.
const SnippetRadius = 50

// indexFold returns the byte offset and byte length in text of the
// first case-insensitive occurrence of term, or (-1, 0).  Offsets refer
// to the original text, never to a lowercased copy.
func indexFold(text, term string) (int, int) {
	if term == "" {
		return -1, 0
	}
	needle := []rune(strings.ToLower(term))

	for i := 0; i < len(text); {
		j, k := i, 0
		for k < len(needle) && j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if unicode.ToLower(r) != needle[k] {
				break
			}
			j += size
			k++
		}
		if k == len(needle) {
			return i, j - i
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1, 0
}

// Snippet clips text to a ±SnippetRadius rune window centred on the
// first match, adding ellipses on clipped edges.  Without a match the
// head of the text is kept.
func Snippet(text, term string) string {
	runes := []rune(text)
	center, width := 0, 0
	if idx, n := indexFold(text, term); idx >= 0 {
		center = utf8.RuneCountInString(text[:idx])
		width = utf8.RuneCountInString(text[idx : idx+n])
	}

	start := center - SnippetRadius
	if start < 0 {
		start = 0
	}
	end := center + width + SnippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	out := string(runes[start:end])
	if start > 0 {
		out = "…" + out
	}
	if end < len(runes) {
		out += "…"
	}
	return out
}

// Highlight escapes text and wraps every case-insensitive literal
// occurrence of term in <mark> tags.  An empty term escapes only.
func Highlight(text, term string) template.HTML {
	var b strings.Builder
	for {
		i, n := indexFold(text, term)
		if i < 0 {
			b.WriteString(template.HTMLEscapeString(text))
			break
		}
		b.WriteString(template.HTMLEscapeString(text[:i]))
		b.WriteString("<mark>")
		b.WriteString(template.HTMLEscapeString(text[i : i+n]))
		b.WriteString("</mark>")
		text = text[i+n:]
	}
	return template.HTML(b.String())
}
