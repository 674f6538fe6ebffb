package ftpserver

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// trackingListener counts accepted sessions and separates "stop accepting"
// from "shut down".
//
// drain closes the OS socket at once, releasing the port, while Accept keeps
// blocking until Close so the engine does not observe an accept error before
// it is told to shut down. An unexpected accept failure is reported on Failed
// and Accept then blocks the same way.
type trackingListener struct {
	net.Listener

	active   atomic.Int32
	draining atomic.Bool

	closed    chan struct{}
	closeOnce sync.Once

	failed   chan struct{}
	failOnce sync.Once
	failErr  error
}

func newTrackingListener(l net.Listener) *trackingListener {
	return &trackingListener{
		Listener: l,
		closed:   make(chan struct{}),
		failed:   make(chan struct{}),
	}
}

func (l *trackingListener) Accept() (net.Conn, error) {
	var backoff time.Duration
	for {
		conn, err := l.Listener.Accept()
		if err == nil {
			if l.draining.Load() {
				conn.Close()
				continue
			}
			l.active.Add(1)
			return &trackedConn{Conn: conn, listener: l}, nil
		}

		if l.draining.Load() || l.isClosed() {
			<-l.closed
			return nil, net.ErrClosed
		}

		if isTemporary(err) {
			if backoff == 0 {
				backoff = 5 * time.Millisecond
			} else if backoff *= 2; backoff > time.Second {
				backoff = time.Second
			}
			select {
			case <-time.After(backoff):
				continue
			case <-l.closed:
				return nil, net.ErrClosed
			}
		}

		l.fail(err)
		<-l.closed
		return nil, net.ErrClosed
	}
}

// drain stops accepting and releases the port.
func (l *trackingListener) drain() error {
	l.draining.Store(true)
	err := l.Listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Close unblocks Accept and closes the socket if drain has not.
func (l *trackingListener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	err := l.Listener.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (l *trackingListener) isClosed() bool {
	select {
	case <-l.closed:
		return true
	default:
		return false
	}
}

func (l *trackingListener) fail(err error) {
	l.failOnce.Do(func() {
		l.failErr = err
		close(l.failed)
	})
}

// Failed is closed when Accept hits a non-recoverable error.
func (l *trackingListener) Failed() <-chan struct{} {
	return l.failed
}

// Err returns the accept error that closed Failed.
func (l *trackingListener) Err() error {
	select {
	case <-l.failed:
		return l.failErr
	default:
		return nil
	}
}

// Active returns the number of open sessions.
func (l *trackingListener) Active() int {
	return int(l.active.Load())
}

// waitIdle blocks until no session is open or the deadline channel fires.
func (l *trackingListener) waitIdle(deadline <-chan time.Time, cancel <-chan struct{}) bool {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.Active() == 0 {
			return true
		}
		select {
		case <-ticker.C:
		case <-deadline:
			return l.Active() == 0
		case <-cancel:
			return l.Active() == 0
		}
	}
}

type trackedConn struct {
	net.Conn
	listener *trackingListener
	once     sync.Once
}

func (c *trackedConn) Close() error {
	c.once.Do(func() { c.listener.active.Add(-1) })
	return c.Conn.Close()
}

func isTemporary(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, syscall.EMFILE) || errors.Is(err, syscall.ENFILE) || errors.Is(err, syscall.ECONNABORTED)
}
