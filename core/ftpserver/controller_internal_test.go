package ftpserver

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"easy-ftp/core/apperr"
	"easy-ftp/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingListener accepts nothing and returns a permanent error once broken.
type failingListener struct {
	net.Listener

	broken    chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func (l *failingListener) Accept() (net.Conn, error) {
	select {
	case <-l.broken:
		return nil, errors.New("socket exploded")
	case <-l.closed:
		return nil, net.ErrClosed
	}
}

func (l *failingListener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	return l.Listener.Close()
}

func TestController_AcceptFailureStopsServer(t *testing.T) {
	reserved, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := reserved.Addr().(*net.TCPAddr).Port
	require.NoError(t, reserved.Close())

	c := NewController(Config{BindHost: "127.0.0.1", GraceSeconds: 1}, nil, zap.NewNop())
	t.Cleanup(func() { c.Stop(context.Background()) })

	broken := make(chan struct{})
	c.listen = func(ctx context.Context, addr string) (net.Listener, error) {
		ln, err := listenTCP(ctx, addr)
		if err != nil {
			return nil, err
		}
		return &failingListener{Listener: ln, broken: broken, closed: make(chan struct{})}, nil
	}

	failures := make(chan error, 1)
	c.OnFailure(func(err error) { failures <- err })

	cfg := settings.ServerConfig{RootDir: t.TempDir(), Username: "u", Password: "p", Port: settings.Port(port)}
	_, err = c.Start(context.Background(), cfg)
	require.NoError(t, err)
	require.True(t, c.IsRunning())

	close(broken)

	select {
	case err := <-failures:
		assert.True(t, errors.Is(err, apperr.ErrEngineFailure))
		assert.Contains(t, err.Error(), "socket exploded")
	case <-time.After(5 * time.Second):
		t.Fatal("accept failure not reported")
	}

	assert.Equal(t, Stopped, c.State())
	assert.Empty(t, c.CurrentAddress())
	assert.True(t, errors.Is(c.LastError(), apperr.ErrEngineFailure))

	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", cfg.Port.String()))
	require.NoError(t, err)
	ln.Close()
}
