// Package http is the example server's HTTP transport.
//
// It wires the chi router, the JSON handlers for locations, catalog and
// checkout, and the middleware chain: trace id, access logging, panic
// recovery, gzip and CORS. Static files for the checkout page are served
// from the configured directory.
package http
