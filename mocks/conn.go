/*
Package mocks provides in-memory connection doubles for transport and
session tests, grounded on the teacher's root-level mocks.Conn channel-
rendezvous double and inet/client_test.go's use of it around the
pump/siphon goroutines.
*/
package mocks

import "net"

// Pipe returns two net.Conn halves connected in-memory via net.Pipe, for
// tests that want a real bidirectional stream (e.g. exercising codec
// framing across several small reads) rather than SyncConn's explicit
// call-by-call rendezvous.
func Pipe() (client, server net.Conn) {
	return net.Pipe()
}
