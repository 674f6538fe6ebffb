//go:build windows

package autostart

// New returns the Run key registrar.
func New(cfg Config) (Registrar, error) {
	entry, err := DefaultEntry(cfg)
	if err != nil {
		return nil, err
	}
	return NewRunKey(entry), nil
}
