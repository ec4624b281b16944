// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and CORS concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
//
// Every response body follows a single envelope shape: successful calls
// carry {"success": true, "data": ...} and failures carry
// {"success": false, "error": "..."} with an optional field-keyed
// "details" object for payload validation failures.
package http
