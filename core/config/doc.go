// Package config loads process settings for Easy FTP.
//
// Values come from struct-tag defaults, an optional .env file and the
// environment, in that order of precedence (lowest first). Keys are nested by
// section and map to upper-case variables: ftp.grace_seconds is read from
// FTP_GRACE_SECONDS.
//
// # Sections
//
//   - Server: panel HTTP listener (host, port, API key)
//   - Log: level, encoding and optional log file
//   - FTP: engine limits, drain window and passive-mode settings
//   - Store: where the user's server configuration is persisted
//   - Autostart: names of the OS startup entry
//
// The server configuration edited in the UI (root directory, credentials,
// port) is not part of this package; it lives in core/settings.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address())
package config
