package terminal

// Backend abstracts the platform terminal device under the ANSI terminal
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved mode, stops the resize watcher
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// A nil slice with nil error means a poll timeout or stop
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
