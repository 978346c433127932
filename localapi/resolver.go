package localapi

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolve locates the local daemon using the platform's conventions and
// returns a transport descriptor for it. Resolution is a deterministic
// one-shot lookup: it fails with *ConfigError when no daemon can be found
// and is never retried.
func Resolve() (Transport, error) {
	return resolvePlatform()
}

// transportFromProofDir reads the daemon's loopback port and same-user
// password from a directory holding an `ipnport` symlink and a matching
// `sameuserproof-<port>` file. This is the layout the daemon maintains on
// macOS under /Library/Tailscale and on Windows under the ProgramData
// directory.
func transportFromProofDir(dir string) (Transport, error) {
	portPath := filepath.Join(dir, "ipnport")
	target, err := os.Readlink(portPath)
	if err != nil {
		// On filesystems without symlinks the daemon writes a regular file.
		raw, readErr := os.ReadFile(portPath)
		if readErr != nil {
			return Transport{}, &ConfigError{Path: portPath, Message: "daemon port not published", Err: err}
		}
		target = string(raw)
	}

	port, err := strconv.ParseUint(strings.TrimSpace(target), 10, 16)
	if err != nil {
		return Transport{}, &ConfigError{Path: portPath, Message: "malformed daemon port", Err: err}
	}

	proofPath := filepath.Join(dir, fmt.Sprintf("sameuserproof-%d", port))
	password, err := os.ReadFile(proofPath)
	if err != nil {
		return Transport{}, &ConfigError{Path: proofPath, Message: "same-user password unreadable", Err: err}
	}

	return TCPTransport(uint16(port), strings.TrimSpace(string(password))), nil
}

// parseProofListing extracts a port and password from `lsof -F` output of a
// sandboxed daemon process, which keeps an open file named
// `.tailscale.ipn.macos/sameuserproof-<port>-<password>`.
func parseProofListing(out []byte) (Transport, error) {
	const marker = ".tailscale.ipn.macos/sameuserproof-"
	idx := bytes.Index(out, []byte(marker))
	if idx < 0 {
		return Transport{}, &ConfigError{Path: marker, Message: "no sandboxed daemon proof found"}
	}
	rest := out[idx+len(marker):]
	if end := bytes.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}

	portText, password, ok := strings.Cut(string(rest), "-")
	if !ok {
		return Transport{}, &ConfigError{Path: marker, Message: "malformed sandboxed daemon proof"}
	}
	port, err := strconv.ParseUint(portText, 10, 16)
	if err != nil {
		return Transport{}, &ConfigError{Path: marker, Message: "malformed daemon port", Err: err}
	}
	return TCPTransport(uint16(port), password), nil
}

// transportFromSocket verifies a unix socket exists at path before handing
// it to the request client.
func transportFromSocket(path string) (Transport, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Transport{}, &ConfigError{Path: path, Message: "daemon socket not found", Err: err}
	}
	if fi.Mode()&os.ModeSocket == 0 {
		return Transport{}, &ConfigError{Path: path, Message: "not a unix socket"}
	}
	return SocketTransport(path), nil
}
