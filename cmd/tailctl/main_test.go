package main

import (
	"bytes"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func startDaemon(t *testing.T, handler http.Handler) string {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "tailscaled.sock")
	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen unix: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	t.Cleanup(func() {
		srv.Close()
	})
	return socket
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TAILCTL_SOCKET", "")
	t.Setenv("TAILCTL_PORT", "")

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestStatusCommandJSON(t *testing.T) {
	socket := startDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"BackendState":"Running","Self":{"ID":"n1","HostName":"alpha","Online":true}}`)
	}))

	out, err := runCommand(t, "status", "--socket", socket, "--json")
	if err != nil {
		t.Fatalf("status --json: %v\n%s", err, out)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded["BackendState"] != "Running" {
		t.Errorf("BackendState = %v", decoded["BackendState"])
	}
}

func TestStatusCommandTable(t *testing.T) {
	socket := startDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"BackendState":"Running","Self":{"HostName":"alpha","TailscaleIPs":["100.64.0.1"]},"Peer":{"k":{"HostName":"beta","TailscaleIPs":["100.64.0.2"],"OS":"linux","Online":true}}}`)
	}))

	out, err := runCommand(t, "status", "--socket", socket)
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	for _, want := range []string{"backend: Running", "alpha", "beta", "online", "100.64.0.2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWhoisCommand(t *testing.T) {
	socket := startDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Node":{"ID":7,"StableID":"nSTABLE","Name":"beta.example.ts.net.","Addresses":["100.64.0.7/32"]},"UserProfile":{"ID":42,"LoginName":"carol@example.com","DisplayName":"Carol"}}`)
	}))

	out, err := runCommand(t, "whois", "100.64.0.7", "--socket", socket)
	if err != nil {
		t.Fatalf("whois: %v\n%s", err, out)
	}
	for _, want := range []string{"beta.example.ts.net", "carol@example.com", "Carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWhoisCommandUnknownAddress(t *testing.T) {
	socket := startDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no match for IP", http.StatusNotFound)
	}))

	_, err := runCommand(t, "whois", "100.64.0.9", "--socket", socket)
	if err == nil || !strings.Contains(err.Error(), "no tailnet node owns") {
		t.Fatalf("expected ownership error, got %v", err)
	}
}

func TestWhoisCommandRejectsBadAddress(t *testing.T) {
	_, err := runCommand(t, "whois", "not-an-ip", "--socket", filepath.Join(t.TempDir(), "missing.sock"))
	if err == nil || !strings.Contains(err.Error(), "not an IPv4 or IPv6 literal") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCertCommandWritesFiles(t *testing.T) {
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("leaf")})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: []byte("key")})
	socket := startDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(append(append([]byte{}, certPEM...), keyPEM...))
	}))

	dir := t.TempDir()
	certFile := filepath.Join(dir, "node.crt")
	keyFile := filepath.Join(dir, "node.key")

	out, err := runCommand(t, "cert", "node.example.ts.net",
		"--socket", socket, "--cert-file", certFile, "--key-file", keyFile)
	if err != nil {
		t.Fatalf("cert: %v\n%s", err, out)
	}

	gotCert, err := os.ReadFile(certFile)
	if err != nil {
		t.Fatalf("read cert: %v", err)
	}
	if !bytes.Equal(gotCert, certPEM) {
		t.Errorf("cert file mismatch:\n%s", gotCert)
	}
	gotKey, err := os.ReadFile(keyFile)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if !bytes.Equal(gotKey, keyPEM) {
		t.Errorf("key file mismatch:\n%s", gotKey)
	}

	info, err := os.Stat(keyFile)
	if err != nil {
		t.Fatalf("stat key: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("key mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestCertCommandRejectsEmptyDomain(t *testing.T) {
	_, err := runCommand(t, "cert", "", "--socket", filepath.Join(t.TempDir(), "missing.sock"))
	if err == nil || !strings.Contains(err.Error(), "must not be empty") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestConfigPathCommand(t *testing.T) {
	out, err := runCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join("tailctl", "config.toml")) {
		t.Errorf("unexpected config path: %s", out)
	}
}

func TestSocketAndPortAreExclusive(t *testing.T) {
	_, err := runCommand(t, "status", "--socket", "/tmp/x.sock", "--port", "41112")
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected exclusivity error, got %v", err)
	}
}
