package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"easy-ftp/core/autostart"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/logger"
	"easy-ftp/core/server"
	"easy-ftp/core/settings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the panel HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// FTP holds process-wide settings for the embedded FTP engine.
	FTP ftpserver.Config `mapstructure:"ftp"`
	// Store locates the persisted server configuration.
	Store settings.Config `mapstructure:"store"`
	// Autostart names the OS startup entry.
	Autostart autostart.Config `mapstructure:"autostart"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")

	// Missing .env is normal for installed builds.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// FTP_GRACE_SECONDS -> ftp.grace_seconds
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

// bindValues registers every tagged field with its default so AutomaticEnv
// can override it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
