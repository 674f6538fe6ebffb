package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"easy-ftp/core/apperr"

	"go.uber.org/zap"
)

// Store loads and saves the ServerConfig record.
type Store struct {
	path   string
	logger *zap.Logger

	// mu serializes writers in this process; readers rely on atomic rename.
	mu sync.Mutex
}

// NewStore resolves the config file location. The directory is created on
// the first Save.
func NewStore(cfg Config, logger *zap.Logger) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, apperr.New(apperr.KindStorageFailure, "resolve config dir", err)
		}
		dir = filepath.Join(base, AppDirName)
	}

	name := cfg.FileName
	if name == "" {
		name = "config.json"
	}

	return &Store{
		path:   filepath.Join(dir, name),
		logger: logger,
	}, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Defaults returns the configuration used when nothing valid is on disk.
func Defaults() ServerConfig {
	return ServerConfig{
		Port: DefaultPort,
	}
}

// Load returns the persisted configuration, or Defaults when the file is
// missing or cannot be decoded.
func (s *Store) Load() ServerConfig {
	cfg, err := s.Read()
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("No saved configuration, using defaults", zap.String("path", s.path))
		} else {
			s.logger.Warn("Saved configuration unusable, using defaults", zap.String("path", s.path), zap.Error(err))
		}
		return Defaults()
	}
	return cfg
}

// Read returns the persisted configuration or the reason it cannot be used.
// A missing file is reported with an error satisfying os.IsNotExist.
func (s *Store) Read() (ServerConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ServerConfig{}, err
		}
		return ServerConfig{}, apperr.New(apperr.KindStorageFailure, "read config", err)
	}

	cfg := Defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ServerConfig{}, apperr.New(apperr.KindStorageFailure, "decode config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}

// Save atomically replaces the persisted configuration.
func (s *Store) Save(cfg ServerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return apperr.New(apperr.KindStorageFailure, "encode config", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return apperr.New(apperr.KindStorageFailure, "write config", err)
	}

	s.logger.Debug("Configuration saved", zap.String("path", s.path))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	// The file holds the FTP password.
	if err := tmpFile.Chmod(0o600); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
