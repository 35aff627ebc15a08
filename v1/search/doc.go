// Package search provides a typed representation of annotation search queries
// and the serializer that renders them into the search index wire format.
//
// # Overview
//
// Query translation never assembles JSON by hand. Translators build a [Query]
// out of tagged clause values ([Term], [Wildcard], [Phrase], [Range], [Or],
// [Missing]) and sort keys; [Query.Body] and [Query.CountBody] are the only
// places where the wire format is produced:
//
//	{
//	  "query": {"constant_score": {"filter": {"bool": {"must": [ ...clauses ]}}}},
//	  "sort":  [{"fdr": "asc"}, {"msm": "desc"}]
//	}
//
// Offset and limit are request-level parameters (From/Size) and are never part
// of the body.
//
// # m/z Encoding
//
// m/z values are stored in the index as fixed-width, zero-padded decimal strings
// so that lexicographic order equals numeric order. [FormatMz] and the [Mz] JSON
// type share [MzWidth] and [MzPrecision]; the indexing path and the query path
// must both go through them. [ValidMz] rejects values outside [0, MaxMz),
// which would not keep the width.
//
//	search.FormatMz(100)     // "00100.0000"
//	search.FormatMz(1234.5)  // "01234.5000"
package search
