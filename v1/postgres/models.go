package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/metaspace/smquery/v1/filters"
	"github.com/metaspace/smquery/v1/relational"
)

// Dataset is a row of the dataset table.
type Dataset struct {
	ID       string   `gorm:"column:id;primaryKey" json:"id"`
	Name     string   `gorm:"column:name" json:"name"`
	Metadata Metadata `gorm:"column:metadata;type:json" json:"metadata"`
}

// TableName implements gorm's tabler interface.
func (Dataset) TableName() string {
	return relational.DatasetTable
}

// Field looks up the metadata value at path.
func (d Dataset) Field(path ...string) (any, bool) {
	return filters.MapAccessor{}.Lookup(d.Metadata, path)
}

// Metadata is the free-form JSON metadata document of a dataset.
type Metadata map[string]any

// Map returns the document as a plain map, for filters.MapAccessor.
func (m Metadata) Map() map[string]any {
	return m
}

// Value implements driver.Valuer.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, fmt.Errorf("failed to encode dataset metadata: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *Metadata) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into dataset metadata", src)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode dataset metadata: %w", err)
	}
	*m = doc
	return nil
}

// Analyzer types with m/z dependent resolving power.
const (
	AnalyzerOrbitrap = "ORBITRAP"
	AnalyzerFTICR    = "FTICR"
)

// Analyzer describes the mass analyzer a dataset was acquired with.
type Analyzer struct {
	Type string `json:"type"`
	// ReferenceMz and ReferenceResolvingPower give the resolving power
	// measured at a reference m/z.
	ReferenceMz             float64 `json:"mz"`
	ReferenceResolvingPower float64 `json:"resolvingPower"`
}

// Analyzer extracts the analyzer description from MS_Analysis.
func (d Dataset) Analyzer() (Analyzer, bool) {
	raw, ok := d.Field("MS_Analysis", "Analyzer")
	if !ok {
		return Analyzer{}, false
	}
	kind, _ := raw.(string)

	a := Analyzer{Type: kind}
	if v, ok := d.Field("MS_Analysis", "Detector_Resolving_Power", "mz"); ok {
		a.ReferenceMz, _ = number(v)
	}
	if v, ok := d.Field("MS_Analysis", "Detector_Resolving_Power", "Resolving_Power"); ok {
		a.ReferenceResolvingPower, _ = number(v)
	}
	return a, true
}

// ResolvingPowerAt returns the resolving power at mz. It scales with
// sqrt(mz0/mz) for Orbitrap and mz0/mz for FTICR analyzers, and is constant
// otherwise.
func (a Analyzer) ResolvingPowerAt(mz float64) float64 {
	if mz <= 0 || a.ReferenceMz <= 0 {
		return a.ReferenceResolvingPower
	}

	switch strings.ToUpper(a.Type) {
	case AnalyzerOrbitrap:
		return math.Sqrt(a.ReferenceMz/mz) * a.ReferenceResolvingPower
	case AnalyzerFTICR:
		return (a.ReferenceMz / mz) * a.ReferenceResolvingPower
	default:
		return a.ReferenceResolvingPower
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
