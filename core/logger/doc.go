// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework serving the panel API.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so all logs related to one panel request can be correlated.
//
// # Engine Logs
//
// The embedded FTP engine logs through log/slog. Slog bridges it onto the same
// zap core so engine and control-plane entries share encoding and outputs.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - File: optional extra output path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Panel started")
//
//	engineLog := logger.Slog(log, "ftp")
package logger
