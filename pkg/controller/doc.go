// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Applies the configured CORS origin policy and answers OPTIONS preflight requests.
//   - WithLogger: Assigns a request ID, attaches a request-scoped logger to the context and writes the access log.
//   - WithMetrics: Observes request latency per chi route pattern.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - RequestID: Reads the request ID assigned by WithLogger.
package controller
