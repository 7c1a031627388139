package reverse

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultIgnoreSymbols are kept in place when the default ignore mode is selected.
const DefaultIgnoreSymbols = "1234567890~!@#$%^&*()_}{:>?<;,./"

// IgnoreSet holds the characters that keep their position while a word is reversed.
// Members are whole user-perceived characters (grapheme clusters), not bytes or runes.
// The zero value is an empty set.
type IgnoreSet struct {
	members map[string]struct{}
	order   []string
}

func NewIgnoreSet(symbols string) IgnoreSet {
	set := IgnoreSet{members: make(map[string]struct{})}
	g := uniseg.NewGraphemes(symbols)
	for g.Next() {
		set.add(g.Str())
	}
	return set
}

func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(DefaultIgnoreSymbols)
}

// EffectiveIgnoreSet picks the set a selective reversal runs with. The custom
// symbols are only looked at when the default set is not requested, and a nil
// custom string means nothing is ignored.
func EffectiveIgnoreSet(useDefault bool, custom *string) IgnoreSet {
	if useDefault {
		return DefaultIgnoreSet()
	}
	if custom == nil {
		return IgnoreSet{}
	}
	return NewIgnoreSet(*custom)
}

func (s *IgnoreSet) add(char string) {
	if _, ok := s.members[char]; ok {
		return
	}
	s.members[char] = struct{}{}
	s.order = append(s.order, char)
}

func (s IgnoreSet) Contains(char string) bool {
	_, ok := s.members[char]
	return ok
}

func (s IgnoreSet) Len() int {
	return len(s.order)
}

// String returns the members in the order they were first seen.
func (s IgnoreSet) String() string {
	return strings.Join(s.order, "")
}
