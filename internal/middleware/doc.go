// Package middleware provides HTTP middleware for the datematch API.
//
// # Available Middleware
//
//   - RequestID: unique request identifier, echoed in X-Request-ID
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a Problem Details 500 response
//   - CORS: origin allow-listing with preflight handling
//   - RateLimit: token bucket limiting per client IP
//   - Compress: gzip response compression
//
// # Identity
//
// There is no authentication layer. The only caller identity available to
// middleware is the client IP (see ClientIP), which the rate limiter keys on.
// Participant identity is a body-level concern handled by the service layer.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
