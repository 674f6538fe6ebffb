package autostart

import (
	"errors"
	"os"

	"easy-ftp/core/apperr"
)

// Registrar manages the OS startup entry of the application.
type Registrar interface {
	// Enable registers the application. Enabling twice is a no-op.
	Enable() error
	// Disable removes the registration. Disabling when absent is a no-op.
	Disable() error
	// IsEnabled reads the current registration from the OS.
	IsEnabled() (bool, error)
}

// Config holds settings for the startup entry.
type Config struct {
	// Name identifies the entry (desktop file name, Run value name).
	Name string `mapstructure:"name" default:"EasyFTPServer"`
	// Label is the reverse-DNS LaunchAgent label used on macOS.
	Label string `mapstructure:"label" default:"com.easyftp.server"`
	// Description is shown by desktop environments.
	Description string `mapstructure:"description" default:"Easy FTP Server"`
	// Dir overrides the platform directory holding the entry.
	Dir string `mapstructure:"dir" default:""`
}

// Entry describes what the OS launches at login.
type Entry struct {
	Name        string
	Label       string
	Description string
	// Command is the program and its arguments.
	Command []string
}

// AutostartFlag is passed to the start command when launched at login.
const AutostartFlag = "--autostart"

// DefaultEntry builds the entry for the running executable.
func DefaultEntry(cfg Config) (Entry, error) {
	exe, err := os.Executable()
	if err != nil {
		return Entry{}, apperr.New(apperr.KindPermissionDenied, "resolve executable", err)
	}
	return Entry{
		Name:        cfg.Name,
		Label:       cfg.Label,
		Description: cfg.Description,
		Command:     []string{exe, "start", AutostartFlag},
	}, nil
}

// classify maps an OS error to the panel taxonomy.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrPermission) {
		return apperr.New(apperr.KindPermissionDenied, op, err)
	}
	return apperr.New(apperr.KindStorageFailure, op, err)
}
