package query

import (
	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/search"
)

// AnnotationTranslator builds annotation index queries.
type AnnotationTranslator struct {
	registry *filters.Registry
}

// NewAnnotationTranslator creates a translator resolving dataset filters in registry.
func NewAnnotationTranslator(registry *filters.Registry) *AnnotationTranslator {
	return &AnnotationTranslator{registry: registry}
}

// Translate builds a sorted and windowed search query.
//
// The database scope is always the first clause. Optional criteria follow in a
// fixed order: dataset id, m/z range, score range, FDR, formula, adduct,
// dataset name, compound search, then dataset filters in registry order.
func (t *AnnotationTranslator) Translate(c AnnotationCriteria) (*search.Query, error) {
	if err := validateAnnotation(c); err != nil {
		return nil, err
	}
	if err := validateWindow(c.Offset, c.Limit); err != nil {
		return nil, err
	}

	q := &search.Query{
		Must: t.clauses(c),
		Sort: ResolveSearch(c.Order),
	}
	if err := Paginate(q, c.Offset, c.Limit); err != nil {
		return nil, err
	}
	return q, nil
}

// TranslateCount builds an unsorted, unwindowed query with the same clauses as
// Translate. Order, offset and limit are ignored.
func (t *AnnotationTranslator) TranslateCount(c AnnotationCriteria) (*search.Query, error) {
	if err := validateAnnotation(c); err != nil {
		return nil, err
	}
	return &search.Query{Must: t.clauses(c)}, nil
}

func (t *AnnotationTranslator) clauses(c AnnotationCriteria) []search.Clause {
	must := []search.Clause{search.NewTerm(search.FieldDatabase, c.Database)}

	if c.DatasetID != "" {
		must = append(must, search.NewTerm(search.FieldDatasetID, c.DatasetID))
	}
	if c.MzRange != nil {
		must = append(must, search.NewRange(search.FieldMz,
			search.FormatMz(c.MzRange.Min), search.FormatMz(c.MzRange.Max)))
	}
	if c.ScoreRange != nil {
		must = append(must, search.NewRange(search.FieldScore, c.ScoreRange.Min, c.ScoreRange.Max))
	}
	if c.FDRThreshold != nil {
		must = append(must, search.NewRange(search.FieldFDR, 0, *c.FDRThreshold+FDREpsilon))
	}
	if c.SumFormula != "" {
		must = append(must, search.NewTerm(search.FieldSumFormula, c.SumFormula))
	}
	if c.Adduct != nil {
		must = append(must, search.NewTerm(search.FieldAdduct, *c.Adduct))
	}
	if c.DatasetName != "" {
		must = append(must, search.NewTerm(search.FieldDatasetName, c.DatasetName))
	}
	if c.CompoundSubstring != "" {
		must = append(must, search.NewOr(
			search.NewContains(search.FieldCompoundNames, c.CompoundSubstring),
			search.NewTerm(search.FieldSumFormula, c.CompoundSubstring),
		))
	}

	for _, def := range t.registry.All() {
		v, ok := c.DatasetFilters[def.Name]
		if !ok || v == "" {
			continue
		}
		must = append(must, def.SearchPredicate(v))
	}
	return must
}

func validateAnnotation(c AnnotationCriteria) error {
	if c.Database == "" {
		return invalid("database", "is required")
	}
	if c.MzRange != nil {
		if !c.MzRange.finite() {
			return invalid("mz", "bounds must be finite numbers")
		}
		for _, bound := range []float64{c.MzRange.Min, c.MzRange.Max} {
			if err := search.ValidMz(bound); err != nil {
				return invalid("mz", "bound %v must be in [0, %v)", bound, search.MaxMz)
			}
		}
	}
	if c.ScoreRange != nil && !c.ScoreRange.finite() {
		return invalid("msm", "bounds must be finite numbers")
	}
	if c.FDRThreshold != nil && !isFinite(*c.FDRThreshold) {
		return invalid("fdrLevel", "must be a finite number")
	}
	return c.Order.validate()
}
