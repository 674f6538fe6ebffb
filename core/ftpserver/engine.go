package ftpserver

import (
	"crypto/subtle"
	"net"
	"os"

	"easy-ftp/core/logger"
	"easy-ftp/core/settings"

	"github.com/gonzalop/ftp/server"
	"go.uber.org/zap"
)

// Engine is the FTP protocol implementation driven by the Controller.
type Engine interface {
	// Serve accepts sessions on l until Shutdown is called.
	Serve(l net.Listener) error
	// Shutdown closes the listener and every open session.
	Shutdown() error
}

// EngineConfig is everything an engine needs for one run.
type EngineConfig struct {
	Addr     string
	Server   settings.ServerConfig
	Settings Config
	Logger   *zap.Logger
}

// EngineFactory builds an Engine for one run.
type EngineFactory func(EngineConfig) (Engine, error)

// NewEngine builds a gonzalop/ftp server rooted at the configured directory.
func NewEngine(ec EngineConfig) (Engine, error) {
	sc := ec.Server

	driverOpts := []server.FSDriverOption{
		server.WithSettings(&server.Settings{
			PublicHost:  ec.Settings.PublicHost,
			PasvMinPort: ec.Settings.PasvMinPort,
			PasvMaxPort: ec.Settings.PasvMaxPort,
		}),
	}
	if !sc.Anonymous() {
		driverOpts = append(driverOpts,
			server.WithDisableAnonymous(true),
			server.WithAuthenticator(staticCredentials(sc.RootDir, sc.Username, sc.Password)),
		)
	}

	driver, err := server.NewFSDriver(sc.RootDir, driverOpts...)
	if err != nil {
		return nil, err
	}

	opts := []server.Option{
		server.WithDriver(driver),
		server.WithLogger(logger.Slog(ec.Logger, "ftp")),
		server.WithMaxIdleTime(ec.Settings.IdleTimeout()),
	}
	if ec.Settings.MaxConnections > 0 {
		opts = append(opts, server.WithMaxConnections(ec.Settings.MaxConnections))
	}

	srv, err := server.NewServer(ec.Addr, opts...)
	if err != nil {
		return nil, err
	}
	return srv, nil
}

// staticCredentials accepts exactly one user with read-write access to root.
func staticCredentials(root, username, password string) func(user, pass, host string) (string, bool, error) {
	wantUser := []byte(username)
	wantPass := []byte(password)
	return func(user, pass, _ string) (string, bool, error) {
		userOK := subtle.ConstantTimeCompare([]byte(user), wantUser) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), wantPass) == 1
		if !userOK || !passOK {
			return "", false, os.ErrPermission
		}
		return root, false, nil
	}
}
