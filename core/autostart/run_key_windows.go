//go:build windows

package autostart

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// RunKey registers the application under the current user's Run key.
type RunKey struct {
	entry Entry
	// startupDir holds shortcuts created by older releases.
	startupDir string
}

// NewRunKey returns a registrar for the HKCU Run key.
func NewRunKey(entry Entry) *RunKey {
	return &RunKey{
		entry:      entry,
		startupDir: filepath.Join(os.Getenv("APPDATA"), "Microsoft", "Windows", "Start Menu", "Programs", "Startup"),
	}
}

func (r *RunKey) Enable() error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return classify("open run key", err)
	}
	defer k.Close()

	if err := k.SetStringValue(r.entry.Name, commandLine(r.entry.Command)); err != nil {
		return classify("write run value", err)
	}
	return nil
}

func (r *RunKey) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err == nil {
		err = k.DeleteValue(r.entry.Name)
		k.Close()
	}
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return classify("delete run value", err)
	}

	for _, legacy := range r.legacyPaths() {
		if err := os.Remove(legacy); err != nil && !errors.Is(err, os.ErrNotExist) {
			return classify("remove startup shortcut", err)
		}
	}
	return nil
}

func (r *RunKey) IsEnabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err == nil {
		_, _, err = k.GetStringValue(r.entry.Name)
		k.Close()
		if err == nil {
			return true, nil
		}
	}
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return false, classify("read run value", err)
	}

	if _, err := os.Stat(r.legacyPaths()[0]); err == nil {
		return true, nil
	}
	return false, nil
}

func (r *RunKey) legacyPaths() []string {
	return []string{
		filepath.Join(r.startupDir, r.entry.Name+".lnk"),
		filepath.Join(r.startupDir, r.entry.Name+".bat"),
	}
}

func commandLine(args []string) string {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = syscall.EscapeArg(arg)
	}
	return strings.Join(escaped, " ")
}
