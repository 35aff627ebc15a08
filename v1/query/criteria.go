package query

import "math"

// FDREpsilon is added to the FDR threshold so that levels stored as floats
// (0.05, 0.1, 0.2, 0.5) are included by an exclusive upper bound.
const FDREpsilon = 1e-3

// Interval is a half-open numeric range [Min, Max).
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (i Interval) finite() bool {
	return isFinite(i.Min) && isFinite(i.Max)
}

// AnnotationCriteria selects annotations from the search index.
//
// Nil pointers and empty strings mean "no constraint", with one exception:
// a non-nil Adduct pointing at "" selects annotations without an adduct.
type AnnotationCriteria struct {
	Database          string            `json:"database"`
	DatasetID         string            `json:"datasetId,omitempty"`
	DatasetName       string            `json:"datasetName,omitempty"`
	MzRange           *Interval         `json:"mz,omitempty"`
	ScoreRange        *Interval         `json:"msm,omitempty"`
	FDRThreshold      *float64          `json:"fdrLevel,omitempty"`
	SumFormula        string            `json:"sumFormula,omitempty"`
	Adduct            *string           `json:"adduct,omitempty"`
	CompoundSubstring string            `json:"compoundQuery,omitempty"`
	DatasetFilters    map[string]string `json:"datasetFilter,omitempty"`
	Order             SortSpec          `json:"order"`
	Offset            int               `json:"offset"`
	Limit             int               `json:"limit"`
}

// DatasetCriteria selects datasets from the relational store.
type DatasetCriteria struct {
	Name           string            `json:"name,omitempty"`
	DatasetFilters map[string]string `json:"datasetFilter,omitempty"`
	Order          SortSpec          `json:"order"`
	Offset         int               `json:"offset"`
	Limit          int               `json:"limit"`
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateWindow(offset, limit int) error {
	if offset < 0 {
		return invalid("offset", "must be >= 0, got %d", offset)
	}
	if limit <= 0 {
		return invalid("limit", "must be > 0, got %d", limit)
	}
	return nil
}
