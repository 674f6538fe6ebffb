package autostart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"easy-ftp/core/utils"

	"github.com/go-ini/ini"
)

const desktopSection = "Desktop Entry"

// DesktopEntry registers an XDG autostart desktop entry.
type DesktopEntry struct {
	dir   string
	entry Entry
}

// NewDesktopEntry returns a registrar writing <dir>/<name>.desktop.
func NewDesktopEntry(dir string, entry Entry) *DesktopEntry {
	return &DesktopEntry{dir: dir, entry: entry}
}

// XDGAutostartDir returns $XDG_CONFIG_HOME/autostart, defaulting to
// ~/.config/autostart.
func XDGAutostartDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "autostart"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "autostart"), nil
}

// Path returns the desktop file location.
func (d *DesktopEntry) Path() string {
	return filepath.Join(d.dir, d.entry.Name+".desktop")
}

func (d *DesktopEntry) Enable() error {
	f := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	sec := f.Section(desktopSection)
	sec.Key("Type").SetValue("Application")
	sec.Key("Name").SetValue(d.entry.Description)
	sec.Key("Comment").SetValue(d.entry.Description)
	sec.Key("Exec").SetValue(execLine(d.entry.Command))
	sec.Key("Terminal").SetValue("false")
	sec.Key("Hidden").SetValue("false")
	sec.Key("X-GNOME-Autostart-enabled").SetValue("true")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return classify("encode desktop entry", err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return classify("create autostart dir", err)
	}
	if err := os.WriteFile(d.Path(), buf.Bytes(), 0o644); err != nil {
		return classify("write desktop entry", err)
	}
	return nil
}

func (d *DesktopEntry) Disable() error {
	if err := os.Remove(d.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return classify("remove desktop entry", err)
	}
	return nil
}

// IsEnabled reports true when the entry exists and is neither hidden nor
// disabled through the GNOME extension key.
func (d *DesktopEntry) IsEnabled() (bool, error) {
	data, err := os.ReadFile(d.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, classify("read desktop entry", err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return false, classify("parse desktop entry", err)
	}

	sec, err := f.GetSection(desktopSection)
	if err != nil {
		return false, nil
	}
	if utils.ToBool(sec.Key("Hidden").String()) {
		return false, nil
	}
	if sec.HasKey("X-GNOME-Autostart-enabled") && !utils.ToBool(sec.Key("X-GNOME-Autostart-enabled").String()) {
		return false, nil
	}
	return true, nil
}

// execLine quotes arguments the way the freedesktop Exec key expects.
func execLine(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg != "" && !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`") {
			quoted[i] = arg
			continue
		}
		var b strings.Builder
		b.WriteByte('"')
		for _, r := range arg {
			switch r {
			case '"', '`', '$', '\\':
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
		quoted[i] = b.String()
	}
	return strings.Join(quoted, " ")
}
