package settings

// Config holds settings for the configuration store itself.
type Config struct {
	// Dir is the directory holding the config file. Empty means the user
	// configuration directory.
	Dir string `mapstructure:"dir" default:""`
	// FileName is the name of the config file inside Dir.
	FileName string `mapstructure:"file_name" default:"config.json"`
}

// AppDirName is the per-user directory created under os.UserConfigDir.
const AppDirName = "EasyFTPServer"
