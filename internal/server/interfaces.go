package server

// Server defines the lifecycle contract of the example server.
//
// RunServer blocks until a stop signal arrives and the listener has been
// shut down. Shutdown may be called from another goroutine to stop it
// earlier.
type Server interface {
	RunServer()
	Shutdown()
}
