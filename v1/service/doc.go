// Package service runs translated queries against the dataset and annotation
// stores.
//
// Each operation validates and translates its criteria with the query
// package, executes the result on the matching store and records a span, a
// backend metric and, on failure, a log entry. Errors are returned to the
// caller unchanged: invalid criteria stay distinguishable from execution
// failures through errors.Is(err, query.ErrInvalidCriteria).
package service
