// Package relational provides a typed representation of dataset listing queries
// against the relational store and renders them either as deterministic SQL text
// or as a gorm scope for execution.
//
// Dataset metadata lives in a JSON document column. Filters address a value
// inside it with a path, which [ExtractText] turns into a text extraction
// expression:
//
//	relational.ExtractText([]string{"Submitted_By", "Institution"})
//	// "metadata" #>> '{Submitted_By,Institution}'
//
// Predicates use `?` placeholders, the gorm convention. [Query.SQL] rewrites
// them into positional `$n` parameters so the rendered text can be logged,
// compared in tests or handed to a plain driver.
package relational
