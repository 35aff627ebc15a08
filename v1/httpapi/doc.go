// Package httpapi serves datasets and annotations as JSON over HTTP.
//
// Request bodies of the list and count routes are the criteria types of the
// query package. Invalid criteria are answered with 400. Execution failures
// of list and count routes are answered with an empty list or zero and
// logged; single-record lookups answer 404 when nothing matches and null when
// the lookup failed.
//
// Routes:
//
//	GET  /health
//	POST /v1/datasets
//	POST /v1/datasets/count
//	GET  /v1/datasets/:id
//	GET  /v1/datasets/:id/annotations
//	GET  /v1/datasets/by-name/:name
//	POST /v1/annotations
//	POST /v1/annotations/count
//	GET  /v1/annotations/:id
//	GET  /v1/metadata/suggestions?field=&query=
package httpapi
