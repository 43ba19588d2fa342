// Package http provides HTTP handlers and routing for the NumServe REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/execute
//   - Metrics: /metrics (Prometheus exposition)
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Request validation
package http
