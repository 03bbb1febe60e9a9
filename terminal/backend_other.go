//go:build !unix

package terminal

import (
	"runtime"

	"github.com/pkg/errors"
)

// unsupportedBackend fails Init on platforms without a raw tty implementation
type unsupportedBackend struct{}

func newBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error {
	return errors.Errorf("ansi backend not supported on %s, use the tcell backend", runtime.GOOS)
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int) { return 0, 0 }

func (unsupportedBackend) Write(p []byte) (int, error) { return len(p), nil }

func (unsupportedBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}

func (unsupportedBackend) SetResizeHandler(func(int, int)) {}

