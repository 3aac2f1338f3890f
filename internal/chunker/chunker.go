// Package chunker splits text into pieces small enough for size-limited translation
// endpoints without breaking sentences when it can avoid it.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split returns pieces of text no longer than maxBytes bytes. Pieces end, in order of
// preference, after sentence punctuation, at whitespace, or at a rune boundary. Text
// that already fits (or maxBytes <= 0) comes back as a single piece.
func Split(text string, maxBytes int) []string {
	pieces, _ := SplitKeep(text, maxBytes)
	return pieces
}

// SplitKeep is Split that also returns the whitespace dropped at each cut: seps[i] sat
// between pieces[i] and pieces[i+1]. A cut inside a word leaves an empty separator.
func SplitKeep(text string, maxBytes int) (pieces, seps []string) {
	text = strings.TrimSpace(text)
	if maxBytes <= 0 || len(text) <= maxBytes {
		return []string{text}, nil
	}

	for len(text) > maxBytes {
		cut := cutPoint(text, maxBytes)
		head := strings.TrimRightFunc(text[:cut], unicode.IsSpace)
		rest := text[cut:]
		next := strings.TrimLeftFunc(rest, unicode.IsSpace)

		pieces = append(pieces, head)
		seps = append(seps, text[len(head):cut]+rest[:len(rest)-len(next)])
		text = next
	}
	pieces = append(pieces, text)
	return pieces, seps
}

// Join reassembles translated pieces with the separators SplitKeep returned.
func Join(pieces, seps []string) string {
	var b strings.Builder
	for i, p := range pieces {
		b.WriteString(p)
		if i < len(seps) && i < len(pieces)-1 {
			b.WriteString(seps[i])
		}
	}
	return b.String()
}

// cutPoint picks a byte offset in (0, maxBytes] to end the next piece.
func cutPoint(text string, maxBytes int) int {
	window := text[:runeFloor(text, maxBytes)]

	sentence, space := -1, -1
	for i, r := range window {
		if !unicode.IsSpace(r) || i == 0 {
			continue
		}
		space = i
		prev, _ := utf8.DecodeLastRuneInString(window[:i])
		if prev == '.' || prev == '!' || prev == '?' || prev == '…' {
			sentence = i
		}
	}

	switch {
	case sentence > 0:
		return sentence
	case space > 0:
		return space
	case len(window) > 0:
		return len(window)
	default:
		// maxBytes is smaller than the first rune; take that rune whole.
		_, size := utf8.DecodeRuneInString(text)
		return size
	}
}

// runeFloor returns the largest rune boundary <= n.
func runeFloor(s string, n int) int {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
