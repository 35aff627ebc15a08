package query

import (
	"strings"

	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/relational"
)

// SuggestionColumn is the alias of the value column in suggestion queries.
const SuggestionColumn = "field"

// DatasetTranslator builds dataset table queries.
type DatasetTranslator struct {
	registry *filters.Registry
}

// NewDatasetTranslator creates a translator resolving dataset filters in registry.
func NewDatasetTranslator(registry *filters.Registry) *DatasetTranslator {
	return &DatasetTranslator{registry: registry}
}

// Translate builds a sorted and windowed dataset query.
func (t *DatasetTranslator) Translate(c DatasetCriteria) (*relational.Query, error) {
	if err := c.Order.validate(); err != nil {
		return nil, err
	}
	if err := validateWindow(c.Offset, c.Limit); err != nil {
		return nil, err
	}

	q := t.base(c)
	q.OrderBy = []relational.Order{ResolveRelational(c.Order)}
	if err := Paginate(q, c.Offset, c.Limit); err != nil {
		return nil, err
	}
	return q, nil
}

// TranslateCount builds the filtering part of Translate only.
func (t *DatasetTranslator) TranslateCount(c DatasetCriteria) (*relational.Query, error) {
	return t.base(c), nil
}

func (t *DatasetTranslator) base(c DatasetCriteria) *relational.Query {
	q := relational.NewQuery(relational.DatasetTable)
	if c.Name != "" {
		q.And(relational.Equals(relational.Ident(relational.NameColumn), c.Name))
	}

	for _, def := range t.registry.All() {
		v, ok := c.DatasetFilters[def.Name]
		if !ok || v == "" {
			continue
		}
		q.And(def.RelationalPredicate(v))
	}
	return q
}

// TranslateSuggestions builds a query for the distinct metadata values at field
// that contain substr, in ascending order. field is either a registered filter
// name or a dotted metadata path such as "Sample_Information.Organism".
func (t *DatasetTranslator) TranslateSuggestions(field, substr string) (*relational.Query, error) {
	path := strings.Split(field, ".")
	if def, ok := t.registry.Get(field); ok {
		path = def.Path
	}

	def := filters.Definition{Name: field, Path: path, Kind: filters.Substring}
	if err := def.Validate(); err != nil {
		return nil, invalid("field", "%q is not a metadata path", field)
	}

	return &relational.Query{
		Table:    relational.DatasetTable,
		Columns:  []string{def.Expression() + " AS " + relational.Ident(SuggestionColumn)},
		Distinct: true,
		Where:    []relational.Predicate{def.RelationalMatch(substr)},
		OrderBy:  []relational.Order{{Column: SuggestionColumn, Direction: relational.ASC}},
	}, nil
}
