package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"easy-ftp/core/apperr"
	"easy-ftp/core/utils"
)

const (
	// DefaultPort is used when no port has been configured.
	DefaultPort Port = 2121
	MinPort     Port = 1
	MaxPort     Port = 65535
)

// Port is a TCP port. It decodes from a JSON number or numeric string.
type Port int

// UnmarshalJSON accepts 2121, "2121" and ":2121". An empty string or null
// decodes to zero and is rejected later by Validate.
func (p *Port) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*p = 0
		return nil
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		*p = 0
		return nil
	}

	v, ok := utils.ToInt(raw)
	if !ok {
		return fmt.Errorf("invalid port %s", b)
	}
	*p = Port(v)
	return nil
}

// String returns the decimal form of the port.
func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// ParsePort parses a port typed into the UI.
func ParsePort(s string) (Port, error) {
	v, ok := utils.ToInt(s)
	if !ok {
		return 0, apperr.Newf(apperr.KindInvalidConfig, "parse port", "port %q is not a number", s)
	}
	p := Port(v)
	if p < MinPort || p > MaxPort {
		return 0, apperr.Newf(apperr.KindInvalidConfig, "parse port", "port %d out of range %d-%d", v, MinPort, MaxPort)
	}
	return p, nil
}

// ServerConfig is the configuration of the embedded FTP server.
type ServerConfig struct {
	RootDir   string `json:"RootDir"`
	Username  string `json:"Username"`
	Password  string `json:"Password"`
	Port      Port   `json:"Port"`
	AutoStart bool   `json:"AutoStart"`
}

// Anonymous reports whether the config selects anonymous, read-only access.
// That is the case only when both username and password are empty.
func (c ServerConfig) Anonymous() bool {
	return c.Username == "" && c.Password == ""
}

// Validate checks the fields the UI can get wrong without touching the
// network: the port range, the credential pair and the root directory, which
// must exist and be readable and writable right now.
func (c ServerConfig) Validate() error {
	if err := c.ValidateFields(); err != nil {
		return err
	}
	return checkRootDir(c.RootDir)
}

// ValidateFields performs the checks that do not hit the filesystem.
func (c ServerConfig) ValidateFields() error {
	const op = "validate config"

	if strings.TrimSpace(c.RootDir) == "" {
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory is required")
	}
	if c.Port < MinPort || c.Port > MaxPort {
		return apperr.Newf(apperr.KindInvalidConfig, op, "port %d out of range %d-%d", c.Port, MinPort, MaxPort)
	}
	if (c.Username == "") != (c.Password == "") {
		return apperr.Newf(apperr.KindInvalidConfig, op, "username and password must both be set, or both be empty for anonymous access")
	}
	return nil
}

func checkRootDir(dir string) error {
	const op = "validate root directory"

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q does not exist", dir)
		}
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q is not accessible: %v", dir, err)
	}
	if !info.IsDir() {
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q is not a directory", dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q is not readable: %v", dir, err)
	}
	_, err = f.Readdirnames(1)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q is not readable: %v", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".easyftp-probe-*")
	if err != nil {
		return apperr.Newf(apperr.KindInvalidConfig, op, "root directory %q is not writable: %v", dir, err)
	}
	name := probe.Name()
	probe.Close()
	_ = os.Remove(name)

	return nil
}
