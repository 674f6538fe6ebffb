// Package server holds the panel HTTP server configuration.
//
// The panel API is how the desktop UI drives the control plane. It binds to
// loopback by default; an optional API key protects it when exposed further.
//
// # Configuration
//
// The Config struct defines the bind host, the port and the API key.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go when the
// Fiber application is started.
package server
