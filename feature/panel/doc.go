// Package panel is the API surface the desktop UI calls.
//
// Service exposes the operations the UI needs: start and stop the FTP
// server, read its status and address, load and save the configuration,
// toggle the OS startup entry and list network addresses. Every operation
// validates its input before touching the controller, the store or the OS,
// and every failure carries an apperr kind.
//
// Handler serves the same operations as JSON over fiber under /api. Errors
// are rendered as {"error": <message>, "code": <kind>} with a fixed status
// per kind.
//
// # Routes
//
//	POST /api/server/start    body: ServerConfig  -> {"address"}
//	POST /api/server/stop                          -> {"status"}
//	GET  /api/server/status                        -> ftpserver.Status
//	GET  /api/server/address                       -> {"address"}
//	GET  /api/config                               -> ServerConfig
//	PUT  /api/config          body: ServerConfig  -> {"status"}
//	GET  /api/config/default                       -> ServerConfig
//	GET  /api/autostart                            -> {"enabled"}
//	PUT  /api/autostart       body: {"enabled"}    -> {"enabled"}
//	GET  /api/network                              -> {"primary", "candidates"}
package panel
