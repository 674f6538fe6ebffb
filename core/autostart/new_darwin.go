//go:build darwin

package autostart

import "easy-ftp/core/apperr"

// New returns the LaunchAgent registrar.
func New(cfg Config) (Registrar, error) {
	entry, err := DefaultEntry(cfg)
	if err != nil {
		return nil, err
	}

	dir := cfg.Dir
	if dir == "" {
		if dir, err = LaunchAgentsDir(); err != nil {
			return nil, apperr.New(apperr.KindPermissionDenied, "resolve launch agents dir", err)
		}
	}
	return NewLaunchAgent(dir, entry), nil
}
