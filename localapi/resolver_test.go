package localapi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProofDir(t *testing.T, port, password string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Symlink(port, filepath.Join(dir, "ipnport")); err != nil {
		t.Fatalf("symlink ipnport: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sameuserproof-"+port), []byte(password+"\n"), 0o600); err != nil {
		t.Fatalf("write sameuserproof: %v", err)
	}
	return dir
}

func TestTransportFromProofDir(t *testing.T) {
	dir := writeProofDir(t, "40200", "hunter2")

	transport, err := transportFromProofDir(dir)
	if err != nil {
		t.Fatalf("transportFromProofDir: %v", err)
	}
	if transport.Port != 40200 {
		t.Errorf("Port = %d, want 40200", transport.Port)
	}
	if transport.Password != "hunter2" {
		t.Errorf("Password = %q, want trailing newline stripped", transport.Password)
	}
	if transport.Endpoint() != "127.0.0.1:40200" {
		t.Errorf("Endpoint = %q", transport.Endpoint())
	}
}

func TestTransportFromProofDirDeterministic(t *testing.T) {
	dir := writeProofDir(t, "40200", "hunter2")

	first, err := transportFromProofDir(dir)
	if err != nil {
		t.Fatalf("first resolution: %v", err)
	}
	second, err := transportFromProofDir(dir)
	if err != nil {
		t.Fatalf("second resolution: %v", err)
	}
	if first != second {
		t.Fatalf("resolution not deterministic: %#v vs %#v", first, second)
	}
}

func TestTransportFromProofDirMissingDaemon(t *testing.T) {
	_, err := transportFromProofDir(t.TempDir())

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestTransportFromProofDirMissingPassword(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink("40200", filepath.Join(dir, "ipnport")); err != nil {
		t.Fatalf("symlink ipnport: %v", err)
	}

	_, err := transportFromProofDir(dir)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestParseProofListing(t *testing.T) {
	out := []byte("p1234\nfcwd\nn/private/var\nn/Users/me/Library/Group Containers/ABC.tailscale.ipn.macos/sameuserproof-40412-s3cret\nn/dev/null\n")

	transport, err := parseProofListing(out)
	if err != nil {
		t.Fatalf("parseProofListing: %v", err)
	}
	if transport.Port != 40412 || transport.Password != "s3cret" {
		t.Fatalf("unexpected transport: %#v", transport)
	}
}

func TestParseProofListingNoMatch(t *testing.T) {
	_, err := parseProofListing([]byte("p1234\nn/dev/null\n"))

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestTransportFromSocket(t *testing.T) {
	_, err := transportFromSocket(filepath.Join(t.TempDir(), "missing.sock"))

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	regular := filepath.Join(t.TempDir(), "not-a-socket")
	if err := os.WriteFile(regular, nil, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err = transportFromSocket(regular)
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for regular file, got %v", err)
	}
}

func TestSocketTransportEndpoint(t *testing.T) {
	transport := SocketTransport("/tmp/mock.sock")
	if transport.Endpoint() != "/tmp/mock.sock" {
		t.Errorf("Endpoint = %q", transport.Endpoint())
	}
	if transport.usesTCP() {
		t.Error("socket transport reported as TCP")
	}
}
