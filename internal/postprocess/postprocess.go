// Package postprocess strips the chatter LLM backends wrap around a translation.
package postprocess

import (
	"regexp"
	"strings"
)

var (
	// RE2 has no backreferences, so each tag pair is spelled out.
	reasoningRe = regexp.MustCompile(`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`)

	// An opening tag whose block was cut off runs to the end of the text.
	openReasoningRe = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>).*$`)

	preambleRe = regexp.MustCompile(`(?i)^(?:(?:sure|certainly|of course)[,.!]?\s+)?(?:here(?:'s| is)\s+)?(?:the\s+)?(?:translated\s+)?(?:translation|text|horoscope)(?:\s+in\s+[\p{L} ]+)?\s*:\s*`)
)

var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'«', '»'},
	{'“', '”'},
	{'‘', '’'},
}

// Clean removes reasoning blocks, a leading "Here is the translation:" style preamble and
// one pair of quotes wrapping the whole text.
func Clean(text string) string {
	text = reasoningRe.ReplaceAllString(text, "")
	text = openReasoningRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	text = preambleRe.ReplaceAllString(text, "")
	return strings.TrimSpace(unquote(strings.TrimSpace(text)))
}

func unquote(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	first, last := runes[0], runes[len(runes)-1]
	for _, pair := range quotePairs {
		if first == pair[0] && last == pair[1] {
			return string(runes[1 : len(runes)-1])
		}
	}
	return text
}
