package util

import (
	"fmt"
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// RandomName joins numA-1 distinct capitalised adjectives with a noun,
// e.g. "QuietBrightLantern".
func RandomName(numA int) string {
	noun := capitalizeFirst(randomdata.Noun())
	if numA <= 1 {
		return noun
	}

	adjectiveSet := make(map[string]struct{})
	adjectives := make([]string, 0, numA-1)
	for len(adjectives) < numA-1 {
		a := randomdata.Adjective()
		if _, ok := adjectiveSet[a]; !ok {
			adjectiveSet[a] = struct{}{}
			adjectives = append(adjectives, capitalizeFirst(a))
		}
	}
	return strings.Join(adjectives, "") + noun
}

// RandomNames returns n unique names, adding adjectives when the
// current length runs out of unique combinations.
func RandomNames(w int, n int) []string {
	nameSet := make(map[string]struct{})
	names := make([]string, 0, n)

	for misses := 0; len(names) < n; {
		name := RandomName(w)
		if _, ok := nameSet[name]; ok {
			misses++
			if misses > 10 {
				w++
				misses = 0
			}
			continue
		}
		nameSet[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// RandomSentence builds a sentence of the given number of words. Every other
// word carries digits or punctuation so both reversal modes have something to do.
func RandomSentence(words int) string {
	parts := make([]string, words)
	for i := range parts {
		switch i % 4 {
		case 0:
			parts[i] = capitalizeFirst(randomdata.Adjective())
		case 1:
			parts[i] = fmt.Sprintf("%s%d", randomdata.Noun(), randomdata.Number(10, 100))
		case 2:
			parts[i] = randomdata.SillyName()
		default:
			parts[i] = randomdata.Noun() + randomdata.StringSample(",", ".", "!", "?")
		}
	}
	return strings.Join(parts, " ")
}

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
