// Package localapi provides a typed client for the tailscaled LocalAPI, the
// HTTP control surface the daemon exposes over a unix socket or a
// password-protected loopback TCP port.
//
// It owns transport resolution (platform conventions for locating the daemon
// socket or port/password pair), a single-shot request client, and typed
// wrappers for the status, certificate-pair, and whois endpoints. Every
// failure surfaces as a typed error value so callers can tell an unreachable
// daemon apart from a rejected request or a malformed response.
//
// The client holds no mutable state beyond its read-only transport
// descriptor and is safe for concurrent use. It never retries, caches, or
// pools connections; callers wanting resilience retry at their own layer.
package localapi
