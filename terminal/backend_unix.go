//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyBackend drives the process's own tty: raw mode through x/term, reads through poll(2)
type ttyBackend struct {
	in, out *os.File
	saved   *term.State
	buf     [256]byte

	watchStop chan struct{}
	watchDone chan struct{}
}

func newBackend() Backend {
	return &ttyBackend{in: os.Stdin, out: os.Stdout}
}

func (b *ttyBackend) Init() error {
	for _, f := range []*os.File{b.in, b.out} {
		if !term.IsTerminal(int(f.Fd())) {
			return errors.Errorf("%s is not a terminal", f.Name())
		}
	}

	saved, err := term.MakeRaw(int(b.in.Fd()))
	if err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	b.saved = saved
	return nil
}

func (b *ttyBackend) Fini() {
	if b.watchStop != nil {
		close(b.watchStop)
		<-b.watchDone
		b.watchStop = nil
	}
	if b.saved != nil {
		term.Restore(int(b.in.Fd()), b.saved)
		b.saved = nil
	}
}

// Size reports 0x0 when the size cannot be read
func (b *ttyBackend) Size() (int, int) {
	w, h, err := term.GetSize(int(b.out.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (b *ttyBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Read waits at most escapeTimeout per poll so a stop request or a lone ESC is noticed
func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fd := int(b.in.Fd())
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := unix.Poll(fds, int(escapeTimeout/time.Millisecond))
		switch {
		case err == unix.EINTR:
			continue
		case err != nil:
			return nil, errors.Wrap(err, "poll stdin")
		case ready == 0:
			return nil, nil
		}

		n, err := unix.Read(fd, b.buf[:])
		switch {
		case err == unix.EINTR, err == unix.EAGAIN:
			continue
		case err != nil:
			return nil, errors.Wrap(err, "read stdin")
		case n == 0:
			return nil, errors.New("stdin closed")
		}
		return append([]byte(nil), b.buf[:n]...), nil
	}
}

// SetResizeHandler starts a SIGWINCH watcher that lives until Fini
func (b *ttyBackend) SetResizeHandler(handler func(width, height int)) {
	b.watchStop = make(chan struct{})
	b.watchDone = make(chan struct{})
	go b.watchResize(handler)
}

func (b *ttyBackend) watchResize(handler func(width, height int)) {
	defer close(b.watchDone)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	defer signal.Stop(sig)

	for {
		select {
		case <-b.watchStop:
			return
		case <-sig:
			if w, h := b.Size(); w > 0 && h > 0 {
				handler(w, h)
			}
		}
	}
}
