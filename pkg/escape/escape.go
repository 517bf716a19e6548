// Package escape implements the two escape-decoding dialects of the ShExC
// grammar: string-literal content and regular-expression pattern text.
//
// Both dialects are policies over a single translation table mapping the
// letter escapes b, f, n, r, t to their control characters. They are kept as
// two separate pure functions so each dialect stays independently testable.
package escape

import (
	"strconv"
	"strings"
)

// controlFor maps escape letters to the control characters they denote.
var controlFor = map[rune]rune{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
}

// letterFor is the inverse of controlFor.
var letterFor = func() map[rune]rune {
	m := make(map[rune]rune, len(controlFor))
	for letter, ctrl := range controlFor {
		m[ctrl] = letter
	}
	return m
}()

// regexMeta holds the characters that stay meaningful to the target regex
// engine when escaped. Escapes of any other character are stripped.
const regexMeta = `\.?*+^$()[]{|}`

// DecodeString decodes the escapes of string-literal content. quote is the
// quote character that needed escaping inside the literal, or zero for
// triple-quoted text where no quote escaping applies.
//
// Escaped quotes are unescaped first; every remaining backslash pair is then
// translated: the letters b, f, n, r, t become their control characters,
// \uXXXX and \UXXXXXXXX become the code point they name, and any other
// escaped character is kept with its backslash dropped. A trailing lone
// backslash is left alone.
func DecodeString(text string, quote rune) string {
	if quote != 0 {
		text = strings.ReplaceAll(text, `\`+string(quote), string(quote))
	}
	if !strings.ContainsRune(text, '\\') {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i == len(runes)-1 {
			b.WriteRune(r)
			continue
		}
		next := runes[i+1]
		if next == 'u' || next == 'U' {
			digits := 4
			if next == 'U' {
				digits = 8
			}
			if cp, ok := hexRune(runes, i+2, digits); ok {
				b.WriteRune(cp)
				i += 1 + digits
				continue
			}
		}
		if ctrl, ok := controlFor[next]; ok {
			b.WriteRune(ctrl)
		} else {
			b.WriteRune(next)
		}
		i++
	}
	return b.String()
}

// DecodeRegex prepares pattern text for a regular-expression engine. The
// source grammar permits escaping any character; only a subset remains
// meaningful to the engine.
//
// For each backslash pair: the five control characters are re-rendered in
// letter-escape form (so a literal newline becomes \n, and \n stays \n),
// escapes of regex metacharacters are preserved as-is, and every other
// escape has its backslash dropped.
func DecodeRegex(text string) string {
	if !strings.ContainsRune(text, '\\') {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i == len(runes)-1 {
			b.WriteRune(r)
			continue
		}
		next := runes[i+1]
		i++
		if ctrl, ok := controlFor[next]; ok {
			next = ctrl
		}
		switch {
		case letterFor[next] != 0:
			b.WriteRune('\\')
			b.WriteRune(letterFor[next])
		case strings.ContainsRune(regexMeta, next):
			b.WriteRune('\\')
			b.WriteRune(next)
		default:
			b.WriteRune(next)
		}
	}
	return b.String()
}

// hexRune parses digits hex runes starting at runes[start] as a code point.
func hexRune(runes []rune, start, digits int) (rune, bool) {
	if start+digits > len(runes) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(runes[start:start+digits]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
