// Package netinfo discovers the address the panel advertises for the FTP server.
//
// DiscoverAddress walks the host interfaces in enumeration order and returns
// the first IPv4 address that is neither loopback nor link-local. When no
// interface qualifies it returns ErrNotFound instead of guessing "localhost";
// the caller decides what to show. Results are never cached because interfaces
// come and go (VPNs, Wi-Fi roaming).
package netinfo
