package source

import (
	"fmt"
	"net"
)

// TCPSource reads successive newline-terminated lines from a blocking
// stream socket, byte by byte, the way the original SafeSocket does. Go's
// runtime retries interrupted blocking syscalls transparently, so the
// EINTR handling the original spells out explicitly needs no code here.
type TCPSource struct {
	ip   string
	port int
	conn net.Conn
}

// NewTCPSource returns a driver that will connect to ip:port once Open.
func NewTCPSource(ip string, port int) *TCPSource {
	return &TCPSource{ip: ip, port: port}
}

// Open dials a blocking TCP connection to the configured address.
func (t *TCPSource) Open() bool {
	if t.conn != nil {
		return true
	}
	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", t.ip, t.port))
	if err != nil {
		return false
	}
	t.conn = conn
	return true
}

// Read reads bytes until a newline, returning the line without it. It
// reports ok=false once the peer closes the connection or a read fails.
func (t *TCPSource) Read() (string, bool) {
	if t.conn == nil {
		return "", false
	}

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := t.conn.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return string(line), true
			}
			line = append(line, buf[0])
		}
		if err != nil {
			return "", false
		}
	}
}

// Close releases the underlying socket.
func (t *TCPSource) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
