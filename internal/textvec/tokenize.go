package textvec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minimum token length in runes; single characters carry no signal
const minTokenLength = 2

// splits text into lowercase word tokens with stop words removed.
// a token is a maximal run of letters, digits or underscores at least two runes long.
func Tokenize(text string) []string {
	lowered := lower(text)
	tokens := make([]string, 0, 16)

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}

		word := lowered[start:end]
		start = -1

		if utf8.RuneCountInString(word) < minTokenLength || IsStopWord(word) {
			return
		}

		tokens = append(tokens, word)
	}

	for i, r := range lowered {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}

			continue
		}

		flush(i)
	}

	flush(len(lowered))

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// lowercases per rune like strings.ToLower, except that a capital sigma ending
// a word becomes final sigma and dotted capital I keeps its combining dot
func lower(text string) string {
	runes := []rune(text)

	var sb strings.Builder
	sb.Grow(len(text))

	for i, r := range runes {
		switch r {
		case 'Σ':
			if endsWord(runes, i) {
				sb.WriteRune('ς')
			} else {
				sb.WriteRune('σ')
			}
		case 'İ':
			sb.WriteString("i\u0307")
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// a cased letter precedes position i and none follows it, skipping case-ignorable runes
func endsWord(runes []rune, i int) bool {
	j := i - 1
	for j >= 0 && caseIgnorable(runes[j]) {
		j--
	}

	if j < 0 || !cased(runes[j]) {
		return false
	}

	k := i + 1
	for k < len(runes) && caseIgnorable(runes[k]) {
		k++
	}

	return k == len(runes) || !cased(runes[k])
}

func cased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func caseIgnorable(r rune) bool {
	switch r {
	case '\'', '.', ':', '\u00B7', '\u2019':
		return true
	}

	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}
