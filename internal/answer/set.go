package answer

import (
	"github.com/samber/lo"
)

// Set is an accept-set: the normalized strings judged equal to a correct
// answer. Members keep insertion order.
type Set struct {
	members []string
	index   map[string]struct{}
}

// NewSet normalizes each form and collects the distinct results.
func NewSet(forms ...string) Set {
	normalized := lo.Uniq(lo.Map(forms, func(f string, _ int) string {
		return Normalize(f)
	}))
	s := Set{
		members: make([]string, 0, len(normalized)),
		index:   make(map[string]struct{}, len(normalized)),
	}
	for _, n := range normalized {
		if n == "" {
			continue
		}
		s.members = append(s.members, n)
		s.index[n] = struct{}{}
	}
	return s
}

// Union returns a set holding the members of both sets.
func (s Set) Union(other Set) Set {
	return NewSet(append(append([]string{}, s.members...), other.members...)...)
}

// Has reports whether the already-normalized string n is a member.
func (s Set) Has(n string) bool {
	_, ok := s.index[n]
	return ok
}

// Match normalizes raw input and reports whether it is accepted.
func (s Set) Match(raw string) bool {
	return s.Has(Normalize(raw))
}

// Len returns the number of distinct members.
func (s Set) Len() int {
	return len(s.members)
}

// Members returns a copy of the members in insertion order.
func (s Set) Members() []string {
	return append([]string(nil), s.members...)
}
