// Package server owns the process lifecycle of the HTTP transport: it starts
// the listener, waits for termination signals, and drains in-flight requests
// before exiting.
package server
