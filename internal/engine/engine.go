package engine

// ApplicationEngine is a supporting service that must be ready before the
// entry point is launched.
type ApplicationEngine interface {
	Initialize() error
	Deinitialize()
}

// Handler is notified once every engine is ready.
type Handler interface {
	NotifyStarted()
}
