package localapi

import (
	"context"
	"fmt"
	"net"
)

// Transport describes how to reach the local daemon: a unix socket path, or
// a loopback TCP port guarded by a same-user password. It is immutable once
// constructed.
type Transport struct {
	SocketPath string
	Port       uint16
	Password   string
}

// SocketTransport returns a descriptor for a daemon listening on a unix
// socket.
func SocketTransport(path string) Transport {
	return Transport{SocketPath: path}
}

// TCPTransport returns a descriptor for a daemon listening on loopback TCP
// with Basic-auth password protection.
func TCPTransport(port uint16, password string) Transport {
	return Transport{Port: port, Password: password}
}

// Endpoint returns the address the transport connects to. Two descriptors
// with equal endpoints reach the same daemon.
func (t Transport) Endpoint() string {
	if t.SocketPath != "" {
		return t.SocketPath
	}
	return fmt.Sprintf("127.0.0.1:%d", t.Port)
}

func (t Transport) usesTCP() bool {
	return t.SocketPath == ""
}

// dialContext ignores the address the HTTP layer asks for and always
// connects to the resolved daemon endpoint.
func (t Transport) dialContext(ctx context.Context, _, _ string) (net.Conn, error) {
	var d net.Dialer
	if t.SocketPath != "" {
		return d.DialContext(ctx, "unix", t.SocketPath)
	}
	return d.DialContext(ctx, "tcp", t.Endpoint())
}
