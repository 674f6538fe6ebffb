package panel

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"easy-ftp/core/apperr"
	"easy-ftp/core/autostart"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/netinfo"
	"easy-ftp/core/settings"

	"go.uber.org/zap"
)

// Suggested credentials offered by DefaultConfig.
const (
	DefaultUsername = "admin"
	DefaultPassword = "123456"
)

// Lifecycle is the server controller as seen by the panel.
type Lifecycle interface {
	Start(ctx context.Context, cfg settings.ServerConfig) (string, error)
	Stop(ctx context.Context) error
	IsRunning() bool
	CurrentAddress() string
	Snapshot() ftpserver.Status
}

// ConfigStore persists the server configuration.
type ConfigStore interface {
	Load() settings.ServerConfig
	Read() (settings.ServerConfig, error)
	Save(cfg settings.ServerConfig) error
}

// NetworkInfo lists the addresses the server can be reached on.
type NetworkInfo interface {
	Candidates() ([]netinfo.Candidate, error)
}

// Result is the outcome of an asynchronous start or stop.
type Result struct {
	Address string
	Err     error
}

// Service is the API the UI drives. It validates input before delegating to
// the controller, the config store and the autostart registrar.
type Service struct {
	server    Lifecycle
	store     ConfigStore
	registrar autostart.Registrar
	network   NetworkInfo
	logger    *zap.Logger

	// configMu serializes read-modify-write cycles on the persisted config.
	configMu sync.Mutex
	// tasks holds one token per in-flight async lifecycle task.
	tasks chan struct{}
}

// NewService creates a new panel service.
func NewService(server Lifecycle, store ConfigStore, registrar autostart.Registrar, network NetworkInfo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		server:    server,
		store:     store,
		registrar: registrar,
		network:   network,
		logger:    logger,
		tasks:     make(chan struct{}, 1),
	}
}

// StartServer validates cfg and starts the FTP server with it.
func (s *Service) StartServer(ctx context.Context, cfg settings.ServerConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return s.server.Start(ctx, cfg)
}

// StopServer stops the FTP server. Stopping a stopped server succeeds.
func (s *Service) StopServer(ctx context.Context) error {
	return s.server.Stop(ctx)
}

// IsServerRunning reports whether the FTP server is running.
func (s *Service) IsServerRunning() bool {
	return s.server.IsRunning()
}

// GetServerAddress returns the advertised address, or "" when stopped.
func (s *Service) GetServerAddress() string {
	return s.server.CurrentAddress()
}

// Status returns the controller status.
func (s *Service) Status() ftpserver.Status {
	return s.server.Snapshot()
}

// StartServerAsync starts the server in the background. Only one start or
// stop may be in flight; extra submissions fail with Busy.
func (s *Service) StartServerAsync(ctx context.Context, cfg settings.ServerConfig) (<-chan Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return s.runTask("start server", func() Result {
		addr, err := s.server.Start(ctx, cfg)
		return Result{Address: addr, Err: err}
	})
}

// StopServerAsync stops the server in the background.
func (s *Service) StopServerAsync(ctx context.Context) (<-chan Result, error) {
	return s.runTask("stop server", func() Result {
		return Result{Err: s.server.Stop(ctx)}
	})
}

func (s *Service) runTask(op string, fn func() Result) (<-chan Result, error) {
	select {
	case s.tasks <- struct{}{}:
	default:
		return nil, apperr.Newf(apperr.KindBusy, op, "another lifecycle task is running")
	}

	out := make(chan Result, 1)
	go func() {
		defer func() { <-s.tasks }()
		res := fn()
		if res.Err != nil {
			s.logger.Warn("Lifecycle task failed", zap.String("op", op), zap.Error(res.Err))
		}
		out <- res
		close(out)
	}()
	return out, nil
}

// LoadConfig returns the persisted configuration, or defaults.
func (s *Service) LoadConfig() settings.ServerConfig {
	return s.store.Load()
}

// SaveConfig persists cfg. The root directory is not required to exist yet.
func (s *Service) SaveConfig(cfg settings.ServerConfig) error {
	if err := cfg.ValidateFields(); err != nil {
		return err
	}

	s.configMu.Lock()
	defer s.configMu.Unlock()
	return s.store.Save(cfg)
}

// DefaultConfig suggests a first-run configuration: the executable's
// directory as root, the stock credentials and the default port.
func (s *Service) DefaultConfig() settings.ServerConfig {
	root, err := os.Executable()
	if err == nil {
		root = filepath.Dir(root)
	} else if root, err = os.Getwd(); err != nil {
		root = ""
	}

	return settings.ServerConfig{
		RootDir:  root,
		Username: DefaultUsername,
		Password: DefaultPassword,
		Port:     settings.DefaultPort,
	}
}

// SetAutoStart records the preference and registers or removes the OS
// startup entry. If the OS refuses, the previous config is restored so the
// file and the OS agree. An unreadable saved config is left untouched and the
// OS entry is not changed.
func (s *Service) SetAutoStart(enabled bool) error {
	s.configMu.Lock()
	defer s.configMu.Unlock()

	prev, err := s.store.Read()
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		prev = settings.Defaults()
	}
	next := prev
	next.AutoStart = enabled
	if err := s.store.Save(next); err != nil {
		return err
	}

	if enabled {
		err = s.registrar.Enable()
	} else {
		err = s.registrar.Disable()
	}
	if err == nil {
		s.logger.Info("Autostart updated", zap.Bool("enabled", enabled))
		return nil
	}

	if rbErr := s.store.Save(prev); rbErr != nil {
		s.logger.Error("Failed to restore config after autostart failure",
			zap.Error(rbErr),
			zap.NamedError("cause", err))
	}
	return err
}

// CheckAutoStart reads the registration from the OS. Errors read as false.
func (s *Service) CheckAutoStart() bool {
	enabled, err := s.registrar.IsEnabled()
	if err != nil {
		s.logger.Warn("Failed to read autostart state", zap.Error(err))
		return false
	}
	return enabled
}

// Network returns every address the server can be reached on.
func (s *Service) Network() ([]netinfo.Candidate, error) {
	candidates, err := s.network.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, netinfo.ErrNotFound
	}
	return candidates, nil
}

// Boot starts the server when the persisted config asks for it. It returns
// "" and no error when autostart is off.
func (s *Service) Boot(ctx context.Context) (string, error) {
	cfg := s.store.Load()
	if !cfg.AutoStart {
		return "", nil
	}

	addr, err := s.StartServer(ctx, cfg)
	if err != nil {
		return "", err
	}
	s.logger.Info("FTP server started from saved config", zap.String("address", addr))
	return addr, nil
}

// HandleEngineFailure logs a failure the controller recovered from on its own.
func (s *Service) HandleEngineFailure(err error) {
	s.logger.Error("FTP server failed and was stopped", zap.Error(err))
}
