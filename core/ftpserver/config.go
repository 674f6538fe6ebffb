package ftpserver

import "time"

// Config holds process-wide settings for the FTP engine.
type Config struct {
	// GraceSeconds is how long Stop waits for open sessions before force-closing them.
	GraceSeconds int `mapstructure:"grace_seconds" default:"5"`
	// MaxConnections limits simultaneous sessions. 0 means unlimited.
	MaxConnections int `mapstructure:"max_connections" default:"0"`
	// IdleTimeoutSeconds closes sessions idle for longer than this.
	IdleTimeoutSeconds int `mapstructure:"idle_timeout_seconds" default:"300"`
	// BindHost is the interface to listen on. Empty means all interfaces.
	BindHost string `mapstructure:"bind_host" default:""`
	// PublicHost overrides the advertised address and the PASV host.
	PublicHost string `mapstructure:"public_host" default:""`
	// PasvMinPort and PasvMaxPort bound passive data ports. 0 lets the OS choose.
	PasvMinPort int `mapstructure:"pasv_min_port" default:"0"`
	PasvMaxPort int `mapstructure:"pasv_max_port" default:"0"`
}

// GracePeriod returns the drain window used by Stop.
func (c Config) GracePeriod() time.Duration {
	if c.GraceSeconds <= 0 {
		return 0
	}
	return time.Duration(c.GraceSeconds) * time.Second
}

// IdleTimeout returns the session idle limit.
func (c Config) IdleTimeout() time.Duration {
	if c.IdleTimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}
