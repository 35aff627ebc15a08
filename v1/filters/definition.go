package filters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/metaspace/smquery/v1/relational"
	"github.com/metaspace/smquery/v1/search"
)

// ErrInvalidDefinition is returned when a definition cannot be registered.
var ErrInvalidDefinition = errors.New("invalid filter definition")

// MatchKind is the comparison a filter performs.
type MatchKind int

const (
	// Exact compares the extracted value for equality.
	Exact MatchKind = iota + 1
	// Substring tests whether the extracted value contains the filter value.
	Substring
	// Phrase behaves like Substring in the relational store and as a
	// tokenized phrase match in the search index.
	Phrase
)

// String returns the name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Substring:
		return "substring"
	case Phrase:
		return "phrase"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// Preprocessor normalizes a filter value before it is compared.
// It must be pure and idempotent.
type Preprocessor func(string) string

// Definition is a named filter over the dataset metadata document.
type Definition struct {
	Name       string
	Path       []string
	Kind       MatchKind
	Preprocess Preprocessor
}

// renderer holds the three renderings of one match kind.
type renderer struct {
	relational func(expr, value string) relational.Predicate
	search     func(field, value string) search.Clause
	matches    func(actual, value string) bool
}

var renderers = map[MatchKind]renderer{
	Exact: {
		relational: func(expr, v string) relational.Predicate { return relational.Equals(expr, v) },
		search:     func(field, v string) search.Clause { return search.NewTerm(field, v) },
		matches:    func(actual, v string) bool { return actual == v },
	},
	Substring: {
		relational: relational.Contains,
		search:     func(field, v string) search.Clause { return search.NewContains(field, v) },
		matches:    strings.Contains,
	},
}

func init() {
	sub := renderers[Substring]
	renderers[Phrase] = renderer{
		relational: sub.relational,
		search:     func(field, v string) search.Clause { return search.NewPhrase(field, v) },
		matches:    sub.matches,
	}
}

// Validate reports whether the definition can be rendered.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if _, ok := renderers[d.Kind]; !ok {
		return fmt.Errorf("%w: filter %q has unknown match kind %v", ErrInvalidDefinition, d.Name, d.Kind)
	}
	if err := relational.ValidatePath(d.Path); err != nil {
		return fmt.Errorf("%w: filter %q: %v", ErrInvalidDefinition, d.Name, err)
	}
	return nil
}

// Expression returns the relational text extraction expression for the path.
func (d Definition) Expression() string {
	return relational.ExtractText(d.Path)
}

// SearchField returns the denormalized field name in the annotation index.
func (d Definition) SearchField() string {
	return search.FieldDatasetMeta + "." + strings.Join(d.Path, ".")
}

func (d Definition) prepare(v string) string {
	if d.Preprocess == nil {
		return v
	}
	return d.Preprocess(v)
}

func (d Definition) renderer() renderer {
	r, ok := renderers[d.Kind]
	if !ok {
		// unvalidated definitions fall back to equality
		return renderers[Exact]
	}
	return r
}

// RelationalMatch renders the comparison alone, excluding rows without a value.
func (d Definition) RelationalMatch(v string) relational.Predicate {
	return d.renderer().relational(d.Expression(), d.prepare(v))
}

// RelationalPredicate renders the comparison so that rows without a value at
// the path are kept.
func (d Definition) RelationalPredicate(v string) relational.Predicate {
	expr := d.Expression()
	return relational.OrNull(expr, d.renderer().relational(expr, d.prepare(v)))
}

// SearchMatch renders the comparison alone, excluding documents without a value.
func (d Definition) SearchMatch(v string) search.Clause {
	return d.renderer().search(d.SearchField(), d.prepare(v))
}

// SearchPredicate renders the comparison so that documents without a value at
// the path are kept.
func (d Definition) SearchPredicate(v string) search.Clause {
	field := d.SearchField()
	return search.NewOr(search.NewMissing(field), d.renderer().search(field, d.prepare(v)))
}

// Value resolves the definition's value in doc.
func (d Definition) Value(acc Accessor, doc any) (string, bool) {
	raw, ok := acc.Lookup(doc, d.Path)
	if !ok {
		return "", false
	}
	return Text(raw)
}

// Matches evaluates the filter against doc in memory, with the same semantics
// as RelationalPredicate. A document without a value at the path matches.
func (d Definition) Matches(acc Accessor, doc any, v string) bool {
	actual, ok := d.Value(acc, doc)
	if !ok {
		return true
	}
	return d.renderer().matches(actual, d.prepare(v))
}
