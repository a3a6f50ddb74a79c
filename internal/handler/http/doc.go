// Package http implements the REST transport of the reference backend.
// It provides middleware, route handlers, and request/response utilities
// for the user and client endpoints. Authentication, logging, tracing,
// metrics and rate limiting are handled at this layer before requests are
// forwarded to the service layer.
package http
