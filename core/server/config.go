package server

import (
	"net"
	"strings"
)

// Config holds configuration for the panel HTTP server the UI talks to.
type Config struct {
	// Host is the interface the panel API binds to. Keep it on loopback.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the panel API will listen.
	Port string `mapstructure:"port" default:"8089"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the host:port the panel listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// IsLoopback reports whether the panel is reachable only from this machine.
func (c Config) IsLoopback() bool {
	if strings.EqualFold(c.Host, "localhost") {
		return true
	}
	ip := net.ParseIP(c.Host)
	return ip != nil && ip.IsLoopback()
}
