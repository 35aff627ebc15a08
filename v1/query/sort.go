package query

import (
	"fmt"
	"strings"

	"github.com/metaspace/smquery/v1/relational"
	"github.com/metaspace/smquery/v1/search"
)

// SortField is the abstract field a result list is ordered by.
type SortField int

const (
	SortUnspecified SortField = iota
	SortByID
	SortByName
	SortByMz
	SortByScore
	// SortByFdrThenScore orders by FDR in the requested direction, then by
	// score in the opposite direction.
	SortByFdrThenScore
)

var sortFieldNames = map[SortField]string{
	SortUnspecified:    "",
	SortByID:           "id",
	SortByName:         "name",
	SortByMz:           "mz",
	SortByScore:        "score",
	SortByFdrThenScore: "fdrThenScore",
}

// sortFieldAliases maps accepted text forms, lower-cased, to fields.
var sortFieldAliases = map[string]SortField{
	"":                 SortUnspecified,
	"id":               SortByID,
	"order_by_id":      SortByID,
	"name":             SortByName,
	"order_by_name":    SortByName,
	"mz":               SortByMz,
	"order_by_mz":      SortByMz,
	"score":            SortByScore,
	"msm":              SortByScore,
	"order_by_msm":     SortByScore,
	"fdrthenscore":     SortByFdrThenScore,
	"fdr_msm":          SortByFdrThenScore,
	"order_by_fdr_msm": SortByFdrThenScore,
}

// ParseSortField accepts the canonical names ("mz", "fdrThenScore", ...) and
// the ORDER_BY_* enum names, case-insensitively.
func ParseSortField(s string) (SortField, error) {
	f, ok := sortFieldAliases[strings.ToLower(s)]
	if !ok {
		return SortUnspecified, invalid("order.field", "unknown sort field %q", s)
	}
	return f, nil
}

func (f SortField) valid() bool {
	_, ok := sortFieldNames[f]
	return ok
}

func (f SortField) String() string {
	if name, ok := sortFieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SortField(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f SortField) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, invalid("order.field", "unknown sort field %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *SortField) UnmarshalText(text []byte) error {
	v, err := ParseSortField(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SortDirection is the requested direction; it may be left unspecified.
type SortDirection int

const (
	DirectionUnspecified SortDirection = iota
	Ascending
	Descending
)

// ParseSortDirection accepts "asc", "ascending", "desc", "descending" in any case.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case "":
		return DirectionUnspecified, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return DirectionUnspecified, invalid("order.direction", "unknown sort direction %q", s)
	}
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case DirectionUnspecified:
		return ""
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d SortDirection) MarshalText() ([]byte, error) {
	if d < DirectionUnspecified || d > Descending {
		return nil, invalid("order.direction", "unknown sort direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *SortDirection) UnmarshalText(text []byte) error {
	v, err := ParseSortDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// SortSpec is an abstract ordering request.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

func (s SortSpec) validate() error {
	if !s.Field.valid() {
		return invalid("order.field", "unknown sort field %d", int(s.Field))
	}
	if s.Direction < DirectionUnspecified || s.Direction > Descending {
		return invalid("order.direction", "unknown sort direction %d", int(s.Direction))
	}
	return nil
}

// ResolveRelational maps spec onto the dataset table. Only id and name are
// sortable there; every other field falls back to id. The direction is
// ascending only when explicitly requested.
func ResolveRelational(spec SortSpec) relational.Order {
	column := relational.IDColumn
	if spec.Field == SortByName {
		column = relational.NameColumn
	}

	dir := relational.DESC
	if spec.Direction == Ascending {
		dir = relational.ASC
	}
	return relational.Order{Column: column, Direction: dir}
}

// ResolveSearch maps spec onto annotation index sort keys.
//
// Mz and Score sort on a single key; Score defaults to descending. Every other
// field, including an unspecified one, resolves to FDR then score so that search
// results are always ordered.
func ResolveSearch(spec SortSpec) []search.SortKey {
	dir := search.Asc
	switch {
	case spec.Direction == Descending:
		dir = search.Desc
	case spec.Direction == DirectionUnspecified && spec.Field == SortByScore:
		dir = search.Desc
	}

	switch spec.Field {
	case SortByMz:
		return []search.SortKey{{Field: search.FieldMz, Direction: dir}}
	case SortByScore:
		return []search.SortKey{{Field: search.FieldScore, Direction: dir}}
	default:
		return []search.SortKey{
			{Field: search.FieldFDR, Direction: dir},
			{Field: search.FieldScore, Direction: dir.Opposite()},
		}
	}
}
