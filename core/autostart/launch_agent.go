package autostart

import (
	"errors"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// LaunchAgent registers a per-user launchd agent.
type LaunchAgent struct {
	dir   string
	entry Entry
}

type launchAgentPlist struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
	ProcessType      string   `plist:"ProcessType,omitempty"`
	Disabled         bool     `plist:"Disabled,omitempty"`
}

// NewLaunchAgent returns a registrar writing <dir>/<label>.plist.
func NewLaunchAgent(dir string, entry Entry) *LaunchAgent {
	return &LaunchAgent{dir: dir, entry: entry}
}

// LaunchAgentsDir returns ~/Library/LaunchAgents.
func LaunchAgentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "LaunchAgents"), nil
}

// Path returns the property list location.
func (l *LaunchAgent) Path() string {
	return filepath.Join(l.dir, l.entry.Label+".plist")
}

func (l *LaunchAgent) Enable() error {
	data, err := plist.MarshalIndent(launchAgentPlist{
		Label:            l.entry.Label,
		ProgramArguments: l.entry.Command,
		RunAtLoad:        true,
		ProcessType:      "Interactive",
	}, plist.XMLFormat, "\t")
	if err != nil {
		return classify("encode launch agent", err)
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return classify("create launch agents dir", err)
	}
	if err := os.WriteFile(l.Path(), data, 0o644); err != nil {
		return classify("write launch agent", err)
	}
	return nil
}

func (l *LaunchAgent) Disable() error {
	if err := os.Remove(l.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return classify("remove launch agent", err)
	}
	return nil
}

func (l *LaunchAgent) IsEnabled() (bool, error) {
	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, classify("read launch agent", err)
	}

	var agent launchAgentPlist
	if _, err := plist.Unmarshal(data, &agent); err != nil {
		return false, classify("parse launch agent", err)
	}
	return agent.RunAtLoad && !agent.Disabled, nil
}
