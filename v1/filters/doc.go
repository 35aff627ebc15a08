// Package filters defines the named dataset metadata filters shared by the
// relational and the search translators.
//
// A [Definition] couples a name with a path into the dataset metadata document
// and a [MatchKind]. It renders itself as a relational predicate over the
// `metadata` column, as a search clause over the denormalized `ds_meta.*` fields
// of the annotation index, and can evaluate itself against an in-memory
// document through an [Accessor]. The three renderings of a match kind live
// together in a single dispatch table, so Phrase visibly reuses the Substring
// relational rendering.
//
// A record whose metadata does not contain the filter path is never excluded
// by that filter:
//
//	def := filters.Definition{Name: "polarity", Path: []string{"MS_Analysis", "Polarity"}, Kind: filters.Phrase}
//	def.RelationalPredicate("positive").SQL
//	// ("metadata" #>> '{MS_Analysis,Polarity}' IS NULL OR "metadata" #>> '{MS_Analysis,Polarity}' LIKE ?)
//
// Definitions are collected in a [Registry], built and sealed once at startup
// and passed to both translators. [Default] returns the registry holding the
// built-in filters.
package filters
