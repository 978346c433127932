//go:build unix && !darwin

package localapi

// DefaultSocketPath is where the daemon listens on Linux and other
// Unix-like systems.
const DefaultSocketPath = "/var/run/tailscale/tailscaled.sock"

func resolvePlatform() (Transport, error) {
	return transportFromSocket(DefaultSocketPath)
}
