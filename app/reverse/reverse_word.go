package reverse

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ReverseWords reverses the characters of every space separated word.
// A nil text yields an empty string.
func ReverseWords(text *string) string {
	if text == nil {
		return ""
	}
	return ReverseWordsWith(*text, IgnoreSet{})
}

// ReverseWordsSelective reverses every word while characters from the ignore
// set stay where they are. useDefault picks DefaultIgnoreSymbols, otherwise
// the custom symbols are used.
func ReverseWordsSelective(text *string, useDefault bool, custom *string) string {
	if text == nil {
		return ""
	}
	return ReverseWordsWith(*text, EffectiveIgnoreSet(useDefault, custom))
}

// ReverseWordsWith splits text on single spaces, drops empty words and joins
// the reversed words back with one space.
func ReverseWordsWith(text string, ignore IgnoreSet) string {
	words := splitWords(text)
	for i, word := range words {
		words[i] = ReverseWord(word, ignore)
	}
	return strings.Join(words, " ")
}

// ReverseWord reverses a single word in place with two pointers. When both
// ends are ignored only the left one moves on that step.
func ReverseWord(word string, ignore IgnoreSet) string {
	chars := characters(word)
	left, right := 0, len(chars)-1
	for left < right {
		if ignore.Contains(chars[left]) {
			left++
		} else if ignore.Contains(chars[right]) {
			right--
		} else {
			chars[left], chars[right] = chars[right], chars[left]
			left++
			right--
		}
	}
	return strings.Join(chars, "")
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' '
	})
}

func characters(word string) []string {
	chars := make([]string, 0, len(word))
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}
