//go:build !windows && !darwin

package autostart

import "easy-ftp/core/apperr"

// New returns the XDG desktop entry registrar.
func New(cfg Config) (Registrar, error) {
	entry, err := DefaultEntry(cfg)
	if err != nil {
		return nil, err
	}

	dir := cfg.Dir
	if dir == "" {
		if dir, err = XDGAutostartDir(); err != nil {
			return nil, apperr.New(apperr.KindPermissionDenied, "resolve autostart dir", err)
		}
	}
	return NewDesktopEntry(dir, entry), nil
}
