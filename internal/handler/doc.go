// Package handler provides HTTP request handlers for the datematch API.
//
// EventHandler serves every event endpoint; HealthHandler serves the liveness
// probe. Each handler decodes and validates the request at the boundary, calls
// the service layer, and writes either the flat success body or an RFC 9457
// Problem Details error.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped centrally by MapServiceError
//
// # Response Format
//
// Successful event operations return the event snapshot with its computed
// matchingDates array as a single flat JSON object. There is no envelope.
// Errors use application/problem+json.
//
// # Authentication
//
// There is none. Participants are identified by client-held opaque visitor
// ids carried in request bodies; the server trusts whoever presents one.
// Failed ownership checks are reported as 404, never 403, so ids cannot be
// probed.
package handler
