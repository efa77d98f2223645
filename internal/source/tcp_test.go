package source

import (
	"net"
	"testing"
)

func TestTCPSourceReadsLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("50\n78\n92\n"))
	}()

	addr := ln.Addr().(*net.TCPAddr)
	ts := NewTCPSource("127.0.0.1", addr.Port)
	if !ts.Open() {
		t.Fatal("Open should succeed against a listening peer")
	}
	defer ts.Close()

	for _, want := range []string{"50", "78", "92"} {
		line, ok := ts.Read()
		if !ok {
			t.Fatalf("Read should succeed for %q", want)
		}
		if line != want {
			t.Errorf("Read() = %q, want %q", line, want)
		}
	}

	if _, ok := ts.Read(); ok {
		t.Fatal("Read after the peer closes should report ok=false")
	}
}

func TestTCPSourceOpenFailsWithoutListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	ts := NewTCPSource("127.0.0.1", port)
	if ts.Open() {
		t.Fatal("Open should fail when nothing is listening")
	}
}
