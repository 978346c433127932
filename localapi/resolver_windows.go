//go:build windows

package localapi

import (
	"os"
	"path/filepath"
)

func resolvePlatform() (Transport, error) {
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return transportFromProofDir(filepath.Join(programData, "Tailscale"))
}
