// Package query builds store-neutral filter and sort descriptors from
// generic list parameters (search, filter, sortBy, sortOrder). Repositories
// render the descriptors into their own query language; resources stay
// reusable by supplying only their searchable field list.
package query

import "strings"

// Condition is a single constraint on one field.
type Condition struct {
	Field string
	Value string
	// Substring selects case-insensitive substring match instead of equality.
	Substring bool
}

// Filter matches a record when every condition in And matches and, if Or is
// non-empty, at least one condition in Or matches. The zero Filter matches
// everything.
type Filter struct {
	Or  []Condition
	And []Condition
}

// IsEmpty reports whether the filter matches all records.
func (f Filter) IsEmpty() bool {
	return len(f.Or) == 0 && len(f.And) == 0
}

// BuildSearch returns a disjunctive filter: term must case-insensitively
// substring-match at least one of the fields. An empty term or field list
// yields the match-all filter.
func BuildSearch(term string, fields ...string) Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return Filter{}
	}

	or := make([]Condition, 0, len(fields))
	for _, f := range fields {
		or = append(or, Condition{Field: f, Value: term, Substring: true})
	}
	return Filter{Or: or}
}

// BuildEquality returns an exact-equality constraint on field, or the
// match-all filter when either argument is empty.
func BuildEquality(field, value string) Filter {
	if strings.TrimSpace(field) == "" || strings.TrimSpace(value) == "" {
		return Filter{}
	}
	return Filter{And: []Condition{{Field: field, Value: value}}}
}

// Combine merges a search filter with equality filters: And conditions
// accumulate conjunctively, while Or conditions concatenate into one
// disjunctive group. Pass at most one Or-bearing filter; merging several
// would widen the disjunction rather than intersect them. Empty inputs are
// identity elements.
func Combine(filters ...Filter) Filter {
	var out Filter
	for _, f := range filters {
		out.Or = append(out.Or, f.Or...)
		out.And = append(out.And, f.And...)
	}
	return out
}

// Direction of an explicit sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort describes record ordering. The zero value means "no explicit order"
// (store default, typically insertion order).
type Sort struct {
	Field     string
	Direction Direction
}

// IsZero reports whether no explicit order was requested.
func (s Sort) IsZero() bool { return s.Field == "" }

// BuildSort builds a sort descriptor. Only the case-insensitive literal
// "desc" selects descending; anything else (including empty) is ascending.
func BuildSort(field, direction string) Sort {
	field = strings.TrimSpace(field)
	if field == "" {
		return Sort{}
	}
	dir := Ascending
	if strings.EqualFold(strings.TrimSpace(direction), "desc") {
		dir = Descending
	}
	return Sort{Field: field, Direction: dir}
}

// Matches evaluates the filter against a record projection: get returns the
// value of a named field. Used by in-memory repositories; SQL repositories
// render the filter instead.
func (f Filter) Matches(get func(field string) string) bool {
	for _, c := range f.And {
		if !c.matches(get) {
			return false
		}
	}
	if len(f.Or) == 0 {
		return true
	}
	for _, c := range f.Or {
		if c.matches(get) {
			return true
		}
	}
	return false
}

func (c Condition) matches(get func(field string) string) bool {
	v := get(c.Field)
	if c.Substring {
		return strings.Contains(strings.ToLower(v), strings.ToLower(c.Value))
	}
	return v == c.Value
}
