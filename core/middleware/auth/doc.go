// Package auth protects the panel API with a shared key sent in the
// X-API-Key header. With no key configured every request passes, which is
// the default for a panel bound to loopback.
package auth
