package docstore

import (
	"fmt"
	"reflect"
	"strings"
)

// Match maps a field to a case-insensitive substring pattern.
type Match map[string]string

// Filter selects documents. The zero value matches everything. When AnyOf is
// set the filter is a disjunction of substring matches and Equals is
// ignored; otherwise every Equals entry must match exactly.
type Filter struct {
	Equals map[string]any
	AnyOf  []Match
}

// All returns the match-everything filter.
func All() Filter { return Filter{} }

// Eq returns an equality filter on a single field.
func Eq(field string, value any) Filter {
	return Filter{Equals: map[string]any{field: value}}
}

// ByID returns an equality filter on the document identifier.
func ByID(id string) Filter {
	return Eq(IDField, id)
}

// Or returns a disjunction of substring matches.
func Or(conds ...Match) Filter {
	return Filter{AnyOf: conds}
}

// IsEmpty reports whether the filter matches every document.
func (f Filter) IsEmpty() bool {
	return len(f.Equals) == 0 && len(f.AnyOf) == 0
}

// Matches evaluates the filter against doc using in-memory semantics.
func (f Filter) Matches(doc Document) bool {
	if len(f.AnyOf) > 0 {
		for _, cond := range f.AnyOf {
			for field, pattern := range cond {
				if containsFold(doc[field], pattern) {
					return true
				}
			}
		}
		return false
	}

	for field, want := range f.Equals {
		if !valueEqual(field, doc[field], want) {
			return false
		}
	}
	return true
}

func containsFold(v any, pattern string) bool {
	s, ok := v.(string)
	if !ok {
		// null and missing fields behave like the empty string
		s = ""
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
}

func valueEqual(field string, have, want any) bool {
	if field == IDField {
		if have == nil || want == nil {
			return have == want
		}
		return fmt.Sprint(have) == fmt.Sprint(want)
	}
	return reflect.DeepEqual(have, want)
}
