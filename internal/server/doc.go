// Package server runs the example server's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown that lets in-flight checkout requests
// finish before the process exits.
package server
