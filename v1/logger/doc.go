// Package logger provides the service's structured logger, a thin wrapper
// around go.uber.org/zap.
//
// Every method takes a message, an optional error and any number of field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "smquery"})
//	log.Error("dataset query failed", err, map[string]interface{}{"operation": "list"})
//
// With Config.EnableTracing set, the *WithContext variants add the trace_id
// and span_id of the span active in the context.
//
// Other packages depend on a small local Logger interface rather than on this
// type, so tests can pass NewNop or a zaptest-backed logger.
package logger
