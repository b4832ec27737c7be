// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the JSON endpoints.
//   - rayid: a request id stored in the context and echoed in the response
//     headers, picked up by logger.WithRayID.
package middleware
