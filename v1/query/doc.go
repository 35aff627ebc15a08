// Package query translates caller criteria into backend-native queries.
//
// [AnnotationTranslator] turns [AnnotationCriteria] into a [search.Query] for
// the annotation index. [DatasetTranslator] turns [DatasetCriteria] into a
// [relational.Query] over the dataset table. Both consult the same
// [filters.Registry] for dataset-level filters, so registering one definition
// enables the filter on both backends.
//
// Translation is a pure function of its input: no I/O, no shared mutable state.
// Translators are safe for concurrent use, and translating the same criteria
// twice produces identical queries.
//
// # Errors
//
// Criteria of the wrong shape (missing database, non-finite bounds, negative
// offset, non-positive limit, unknown sort field) fail with an
// [*InvalidCriteriaError] wrapping [ErrInvalidCriteria]. Absent optional fields
// and unknown dataset filter names are not errors; they contribute no constraint.
//
// # Example
//
//	tr := query.NewAnnotationTranslator(filters.Default())
//	q, err := tr.Translate(query.AnnotationCriteria{
//		Database: "HMDB",
//		MzRange:  &query.Interval{Min: 100, Max: 200},
//		Order:    query.SortSpec{Field: query.SortByMz, Direction: query.Ascending},
//		Limit:    10,
//	})
//	body, _ := q.Body()
package query
