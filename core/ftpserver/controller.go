package ftpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"easy-ftp/core/apperr"
	"easy-ftp/core/settings"

	"github.com/gonzalop/ftp/server"
	"go.uber.org/zap"
)

// fallbackHost is advertised when no interface address can be discovered.
const fallbackHost = "127.0.0.1"

// serveWait bounds how long Stop waits for the serve goroutine after Shutdown.
const serveWait = 2 * time.Second

// AddressResolver discovers the host address shown to users.
type AddressResolver interface {
	DiscoverAddress() (string, error)
}

// Status is a point-in-time view of the controller.
type Status struct {
	State     State      `json:"state"`
	Running   bool       `json:"running"`
	Address   string     `json:"address"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	Sessions  int        `json:"sessions"`
	LastError string     `json:"last_error,omitempty"`
}

// Option customizes a Controller.
type Option func(*Controller)

// WithEngineFactory replaces the gonzalop/ftp engine.
func WithEngineFactory(f EngineFactory) Option {
	return func(c *Controller) {
		c.factory = f
	}
}

// WithGracePeriod overrides the drain window taken from Config.
func WithGracePeriod(d time.Duration) Option {
	return func(c *Controller) {
		c.grace = d
	}
}

// run is one Start..Stop cycle of the engine.
type run struct {
	engine    Engine
	listener  *trackingListener
	address   string
	startedAt time.Time

	stopping atomic.Bool
	done     chan struct{}
	serveErr error
}

type errBox struct{ err error }

// Controller owns the embedded FTP server and its lifecycle.
type Controller struct {
	cfg      Config
	resolver AddressResolver
	logger   *zap.Logger
	factory  EngineFactory
	listen   func(ctx context.Context, addr string) (net.Listener, error)
	grace    time.Duration

	opMu    sync.Mutex
	state   atomic.Int32
	current atomic.Pointer[run]
	lastErr atomic.Value

	cbMu      sync.Mutex
	onFailure func(error)
}

// NewController creates a stopped controller.
func NewController(cfg Config, resolver AddressResolver, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		cfg:      cfg,
		resolver: resolver,
		logger:   logger,
		factory:  NewEngine,
		listen:   listenTCP,
		grace:    cfg.GracePeriod(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastErr.Store(errBox{})
	return c
}

// OnFailure registers fn to be called after the engine fails on its own.
func (c *Controller) OnFailure(fn func(error)) {
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.onFailure = fn
}

// Start binds the configured port and starts serving. It returns the
// address users should connect to.
func (c *Controller) Start(ctx context.Context, sc settings.ServerConfig) (string, error) {
	const op = "start server"

	if s := c.State(); s != Stopped {
		return "", apperr.Newf(apperr.KindAlreadyRunning, op, "server is %s", s)
	}
	if err := sc.Validate(); err != nil {
		return "", err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !c.state.CompareAndSwap(int32(Stopped), int32(Starting)) {
		return "", apperr.Newf(apperr.KindAlreadyRunning, op, "server is %s", c.State())
	}

	r, err := c.launch(ctx, sc)
	if err != nil {
		c.state.Store(int32(Stopped))
		c.logger.Warn("Failed to start FTP server",
			zap.Int("port", int(sc.Port)),
			zap.Error(err))
		return "", err
	}

	c.lastErr.Store(errBox{})
	c.current.Store(r)
	c.state.Store(int32(Running))

	go c.serve(r)
	go c.monitor(r)

	c.logger.Info("FTP server started",
		zap.String("address", r.address),
		zap.String("root", sc.RootDir),
		zap.Bool("anonymous", sc.Anonymous()))

	return r.address, nil
}

func (c *Controller) launch(ctx context.Context, sc settings.ServerConfig) (*run, error) {
	const op = "start server"

	addr := net.JoinHostPort(c.cfg.BindHost, sc.Port.String())

	engine, err := c.factory(EngineConfig{
		Addr:     addr,
		Server:   sc,
		Settings: c.cfg,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, apperr.New(apperr.KindEngineFailure, op, err)
	}

	ln, err := c.listen(ctx, addr)
	if err != nil {
		return nil, classifyListenError(op, err)
	}

	return &run{
		engine:    engine,
		listener:  newTrackingListener(ln),
		address:   "ftp://" + net.JoinHostPort(c.advertisedHost(), sc.Port.String()),
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}, nil
}

func listenTCP(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "tcp", addr)
}

// Stop stops accepting, lets open sessions finish within the grace period
// and then closes whatever is left. Stopping a stopped server succeeds. The
// port is free when Stop returns.
func (c *Controller) Stop(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	r := c.current.Load()
	if r == nil {
		return nil
	}

	r.stopping.Store(true)
	c.state.Store(int32(Stopping))

	if err := r.listener.drain(); err != nil {
		c.logger.Warn("Failed to close FTP listener", zap.Error(err))
	}

	if active := r.listener.Active(); active > 0 && c.grace > 0 {
		c.logger.Info("Waiting for FTP sessions to finish",
			zap.Int("sessions", active),
			zap.Duration("grace", c.grace))

		timer := time.NewTimer(c.grace)
		idle := r.listener.waitIdle(timer.C, ctx.Done())
		timer.Stop()
		if !idle {
			c.logger.Info("Closing remaining FTP sessions", zap.Int("sessions", r.listener.Active()))
		}
	}

	c.teardown(r)
	c.current.Store(nil)
	c.state.Store(int32(Stopped))

	c.logger.Info("FTP server stopped", zap.Duration("uptime", time.Since(r.startedAt)))
	return nil
}

// teardown force-closes the engine and waits a bounded time for Serve.
// Caller holds opMu.
func (c *Controller) teardown(r *run) {
	if err := r.engine.Shutdown(); err != nil && !errors.Is(err, net.ErrClosed) {
		c.logger.Warn("FTP engine shutdown reported an error", zap.Error(err))
	}
	if err := r.listener.Close(); err != nil {
		c.logger.Warn("Failed to close FTP listener", zap.Error(err))
	}

	timer := time.NewTimer(serveWait)
	defer timer.Stop()
	select {
	case <-r.done:
	case <-timer.C:
		c.logger.Warn("FTP engine did not return from Serve in time")
	}
}

func (c *Controller) serve(r *run) {
	defer close(r.done)
	defer func() {
		if p := recover(); p != nil {
			r.serveErr = fmt.Errorf("engine panic: %v", p)
		}
	}()

	err := r.engine.Serve(r.listener)
	switch {
	case err != nil && !errors.Is(err, server.ErrServerClosed):
		r.serveErr = err
	case !r.stopping.Load():
		r.serveErr = errors.New("engine stopped serving")
	}
}

// monitor turns an engine exit that nobody asked for into a Stopped state.
func (c *Controller) monitor(r *run) {
	var cause error
	select {
	case <-r.done:
		cause = r.serveErr
	case <-r.listener.Failed():
		cause = fmt.Errorf("accept: %w", r.listener.Err())
	}
	if r.stopping.Load() {
		return
	}
	c.fail(r, cause)
}

func (c *Controller) fail(r *run, cause error) {
	c.opMu.Lock()
	if c.current.Load() != r || r.stopping.Load() {
		c.opMu.Unlock()
		return
	}

	r.stopping.Store(true)
	c.state.Store(int32(Stopping))
	c.teardown(r)

	err := apperr.New(apperr.KindEngineFailure, "serve", cause)
	c.lastErr.Store(errBox{err})
	c.current.Store(nil)
	c.state.Store(int32(Stopped))
	c.opMu.Unlock()

	c.logger.Error("FTP server stopped unexpectedly", zap.Error(cause))

	c.cbMu.Lock()
	fn := c.onFailure
	c.cbMu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// IsRunning reports whether the server is accepting sessions.
func (c *Controller) IsRunning() bool {
	return c.State() == Running
}

// CurrentAddress returns the advertised address, or "" unless running.
func (c *Controller) CurrentAddress() string {
	r := c.current.Load()
	if r == nil || !c.IsRunning() {
		return ""
	}
	return r.address
}

// LastError returns the most recent engine failure, cleared by a successful Start.
func (c *Controller) LastError() error {
	return c.lastErr.Load().(errBox).err
}

// Snapshot returns the controller status.
func (c *Controller) Snapshot() Status {
	st := Status{State: c.State()}
	st.Running = st.State == Running

	if r := c.current.Load(); r != nil {
		started := r.startedAt
		st.StartedAt = &started
		st.Sessions = r.listener.Active()
		if st.Running {
			st.Address = r.address
		}
	}
	if err := c.LastError(); err != nil {
		st.LastError = err.Error()
	}
	return st
}

func (c *Controller) advertisedHost() string {
	if c.cfg.PublicHost != "" {
		return c.cfg.PublicHost
	}
	if !isWildcardHost(c.cfg.BindHost) {
		return c.cfg.BindHost
	}
	if c.resolver != nil {
		ip, err := c.resolver.DiscoverAddress()
		if err == nil {
			return ip
		}
		c.logger.Warn("No network address found, advertising loopback", zap.Error(err))
	}
	return fallbackHost
}

// isWildcardHost reports whether host listens on every interface.
func isWildcardHost(host string) bool {
	if host == "" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsUnspecified()
}

func classifyListenError(op string, err error) error {
	switch {
	case errors.Is(err, syscall.EADDRINUSE), isAddrInUseText(err):
		return apperr.New(apperr.KindAddressInUse, op, err)
	case errors.Is(err, os.ErrPermission), errors.Is(err, syscall.EACCES):
		return apperr.New(apperr.KindPermissionDenied, op, err)
	default:
		return apperr.New(apperr.KindEngineFailure, op, err)
	}
}

// isAddrInUseText covers platforms whose errno does not map to EADDRINUSE.
func isAddrInUseText(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "address already in use") ||
		strings.Contains(msg, "only one usage of each socket address")
}
