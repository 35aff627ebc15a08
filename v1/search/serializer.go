package search

import (
	"encoding/json"
	"fmt"
)

// Dialect selects the clause vocabulary used on the wire.
type Dialect string

const (
	// DialectLegacy renders `or`, `missing` and `match{type:phrase}` clauses,
	// the vocabulary the annotation index was originally queried with.
	DialectLegacy Dialect = "legacy"

	// DialectModern renders the same semantics with `bool.should`,
	// `bool.must_not.exists` and `match_phrase`, as accepted by 6.x+ clusters.
	DialectModern Dialect = "modern"
)

// ParseDialect converts a configuration string into a Dialect.
// The empty string selects DialectLegacy.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case "", DialectLegacy:
		return DialectLegacy, nil
	case DialectModern:
		return DialectModern, nil
	default:
		return "", fmt.Errorf("unknown search dialect %q", s)
	}
}

// Body renders the search request body in the legacy dialect.
func (q *Query) Body() ([]byte, error) {
	return q.BodyFor(DialectLegacy)
}

// BodyFor renders the search request body:
//
//	{"query":{"constant_score":{"filter":{"bool":{"must":[...]}}}},"sort":[...]}
//
// from/size are not part of the body; they are passed as request parameters.
func (q *Query) BodyFor(d Dialect) ([]byte, error) {
	body, err := q.queryObject(d)
	if err != nil {
		return nil, err
	}

	sort := make([]map[string]any, 0, len(q.Sort))
	for _, k := range q.Sort {
		sort = append(sort, map[string]any{k.Field: string(k.Direction)})
	}
	body["sort"] = sort

	return json.Marshal(body)
}

// CountBody renders the body of a count request: the query part only.
func (q *Query) CountBody() ([]byte, error) {
	return q.CountBodyFor(DialectLegacy)
}

// CountBodyFor renders the count body in the given dialect.
func (q *Query) CountBodyFor(d Dialect) ([]byte, error) {
	body, err := q.queryObject(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(body)
}

func (q *Query) queryObject(d Dialect) (map[string]any, error) {
	must, err := RenderClauses(q.Must, d)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"query": map[string]any{
			"constant_score": map[string]any{
				"filter": map[string]any{
					"bool": map[string]any{
						"must": must,
					},
				},
			},
		},
	}, nil
}

// RenderClauses converts each clause into its wire representation.
func RenderClauses(clauses []Clause, d Dialect) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(clauses))
	for _, c := range clauses {
		r, err := RenderClause(c, d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// RenderClause converts a single clause into its wire representation.
func RenderClause(c Clause, d Dialect) (map[string]any, error) {
	switch v := c.(type) {
	case Term:
		return map[string]any{"term": map[string]any{v.Field: v.Value}}, nil

	case Wildcard:
		return map[string]any{"wildcard": map[string]any{v.Field: v.Pattern}}, nil

	case Phrase:
		if d == DialectModern {
			return map[string]any{"match_phrase": map[string]any{v.Field: v.Text}}, nil
		}
		return map[string]any{"match": map[string]any{
			v.Field: map[string]any{"query": v.Text, "type": "phrase"},
		}}, nil

	case Range:
		bounds := map[string]any{}
		if v.Gte != nil {
			bounds["gte"] = v.Gte
		}
		if v.Lt != nil {
			bounds["lt"] = v.Lt
		}
		return map[string]any{"range": map[string]any{v.Field: bounds}}, nil

	case Or:
		inner, err := RenderClauses(v.Clauses, d)
		if err != nil {
			return nil, err
		}
		if d == DialectModern {
			return map[string]any{"bool": map[string]any{
				"should":               inner,
				"minimum_should_match": 1,
			}}, nil
		}
		return map[string]any{"or": inner}, nil

	case Missing:
		if d == DialectModern {
			return map[string]any{"bool": map[string]any{
				"must_not": []map[string]any{{"exists": map[string]any{"field": v.Field}}},
			}}, nil
		}
		return map[string]any{"missing": map[string]any{"field": v.Field}}, nil

	default:
		return nil, fmt.Errorf("unsupported clause type %T", c)
	}
}
