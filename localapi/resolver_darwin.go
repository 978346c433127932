//go:build darwin

package localapi

import (
	"fmt"
	"os"
	"os/exec"
)

// proofDir is maintained by the system daemon variant of tailscaled.
const proofDir = "/Library/Tailscale"

// resolvePlatform prefers the system daemon's published port and password
// and falls back to scanning for the sandboxed App Store variant, which
// only advertises itself through an open file in its container.
func resolvePlatform() (Transport, error) {
	t, err := transportFromProofDir(proofDir)
	if err == nil {
		return t, nil
	}

	out, lsofErr := exec.Command(
		"lsof", "-n", "-a",
		fmt.Sprintf("-u%d", os.Getuid()),
		"-c", "IPNExtension", "-F",
	).Output()
	if lsofErr != nil {
		return Transport{}, err
	}
	return parseProofListing(out)
}
