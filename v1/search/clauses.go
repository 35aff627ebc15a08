package search

import "strings"

// Clause is the interface all search clauses implement.
// The serializer converts each concrete clause into its wire representation.
type Clause interface {
	// IsClause is a marker method to keep the set of clauses closed
	IsClause()
}

// Term matches documents whose field equals Value exactly.
type Term struct {
	Field string
	Value any
}

func (Term) IsClause() {}

// Wildcard matches documents whose field matches Pattern, where `*` matches any
// sequence and `?` any single character.
type Wildcard struct {
	Field   string
	Pattern string
}

func (Wildcard) IsClause() {}

// Phrase matches documents whose (tokenized) field contains Text as an ordered phrase.
type Phrase struct {
	Field string
	Text  string
}

func (Phrase) IsClause() {}

// Range matches documents with Gte <= field < Lt. A nil bound is open.
type Range struct {
	Field string
	Gte   any
	Lt    any
}

func (Range) IsClause() {}

// Or matches documents that match at least one of Clauses.
type Or struct {
	Clauses []Clause
}

func (Or) IsClause() {}

// Missing matches documents that have no value for Field.
type Missing struct {
	Field string
}

func (Missing) IsClause() {}

// ── Constructors ─────────────────────────────────────────────────────────────

// NewTerm creates a term clause.
func NewTerm(field string, value any) Term {
	return Term{Field: field, Value: value}
}

// NewContains creates a wildcard clause matching documents whose field contains s.
// Wildcard metacharacters in s are escaped so that s is matched literally.
func NewContains(field, s string) Wildcard {
	return Wildcard{Field: field, Pattern: "*" + EscapeWildcard(s) + "*"}
}

// NewPhrase creates a phrase clause.
func NewPhrase(field, text string) Phrase {
	return Phrase{Field: field, Text: text}
}

// NewRange creates a half-open [gte, lt) range clause.
func NewRange(field string, gte, lt any) Range {
	return Range{Field: field, Gte: gte, Lt: lt}
}

// NewOr creates a disjunction of the given clauses.
func NewOr(clauses ...Clause) Or {
	return Or{Clauses: clauses}
}

// NewMissing creates a clause matching documents without a value for field.
func NewMissing(field string) Missing {
	return Missing{Field: field}
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// EscapeWildcard escapes the wildcard metacharacters `\`, `*` and `?`.
func EscapeWildcard(s string) string {
	return wildcardEscaper.Replace(s)
}
