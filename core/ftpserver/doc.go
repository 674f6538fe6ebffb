// Package ftpserver owns the lifecycle of the embedded FTP server.
//
// # Controller
//
// Controller is the single authority over the server run state:
//
//	Stopped --Start--> Starting --bound--> Running --Stop--> Stopping --> Stopped
//	Starting --bind/engine failure--> Stopped
//	Running --engine crash--> Stopped (LastError records the cause)
//
// Start and Stop are serialized. A Start issued while the server is not
// Stopped is rejected with apperr.ErrAlreadyRunning instead of waiting.
// IsRunning, State and CurrentAddress are atomic reads and never wait for a
// lifecycle operation.
//
// Stop closes the listening socket first, so the port is free as soon as Stop
// returns, then lets open sessions finish for the configured grace period
// before the engine force-closes them.
//
// # Engine
//
// The FTP protocol itself is provided by github.com/gonzalop/ftp/server.
// NewEngine builds one from a settings.ServerConfig; tests substitute their
// own EngineFactory.
package ftpserver
