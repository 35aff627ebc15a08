// Package elastic executes annotation queries against the search index.
//
// Queries are produced by the annotation translator as *search.Query values
// and serialized in the dialect configured for the cluster. The package also
// provides the annotation write path, which stores m/z in the same canonical
// encoding the range clauses compare against.
//
// Basic usage:
//
//	es, err := elastic.NewElastic(elastic.DefaultConfig(), log)
//	if err != nil {
//		return err
//	}
//	hits, err := es.SearchAnnotations(ctx, q)
package elastic
