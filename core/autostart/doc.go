// Package autostart registers the panel as an application launched at login.
//
// Every platform implements the same Registrar contract against its native
// mechanism:
//
//   - Linux and other XDG desktops: a desktop entry in
//     $XDG_CONFIG_HOME/autostart (DesktopEntry).
//   - macOS: a LaunchAgent property list in ~/Library/LaunchAgents
//     (LaunchAgent).
//   - Windows: a value under HKCU\Software\Microsoft\Windows\CurrentVersion\Run
//     (RunKey). Startup-folder shortcuts left by older releases are honoured
//     and cleaned up.
//
// New picks the variant for the running OS. Enable and Disable are
// idempotent. IsEnabled always re-reads the OS so that changes made outside
// the application (a user deleting the login item) are reflected.
package autostart
