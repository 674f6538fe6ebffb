// Package settings persists the FTP server configuration edited in the panel.
//
// # ServerConfig
//
// ServerConfig is the single record the UI edits: root directory, one
// username/password pair, port and the autostart flag. Its JSON field names
// are stable so files written by older releases keep loading; the port may be
// stored as a number or as a numeric string.
//
// # Store
//
// Store reads and writes the record under the user configuration directory
// (os.UserConfigDir()/EasyFTPServer/config.json unless overridden).
//
//   - Load never fails: a missing, unreadable or corrupt file yields Defaults.
//   - Save writes a temporary file in the same directory, syncs it and renames
//     it over the previous file, so a crash leaves either the old or the new
//     record on disk.
//
// # Usage
//
//	store, _ := settings.NewStore(cfg.Store, log)
//	current := store.Load()
//	current.Port = 2121
//	if err := store.Save(current); err != nil { ... }
package settings
