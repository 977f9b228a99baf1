package mocks

import (
	"net"
	"sync"
	"time"
)

const panicMsg = "mocks: SyncConn method not stubbed for this test"

// ioReturn is the (n, err) pair a pending Read/Write call is waiting on.
type ioReturn struct {
	n   int
	err error
}

// SyncConn is a net.Conn double where every Read/Write rendezvous with a
// matching ExpectWrite/Feed call from the test goroutine, so tests can drive
// transport.Supervisor byte-for-byte without a real socket. Adapted from
// the teacher's mocks.Conn: same channel-rendezvous design, with its
// fields and methods renamed to this module's naming.
type SyncConn struct {
	writeCh     chan []byte
	writeReturn chan ioReturn
	readCh      chan []byte
	readReturn  chan ioReturn
	closeWG     sync.WaitGroup
}

// NewSyncConn constructs a ready-to-use SyncConn.
func NewSyncConn() *SyncConn {
	c := &SyncConn{
		writeCh:     make(chan []byte),
		writeReturn: make(chan ioReturn),
		readCh:      make(chan []byte),
		readReturn:  make(chan ioReturn),
	}
	c.closeWG.Add(1)
	return c
}

// ExpectWrite blocks until the code under test calls Write, then returns
// the bytes written and unblocks it with (n, err).
func (c *SyncConn) ExpectWrite(n int, err error) []byte {
	written := <-c.writeCh
	c.writeReturn <- ioReturn{n, err}
	return written
}

// Write implements net.Conn, rendezvousing with ExpectWrite.
func (c *SyncConn) Write(p []byte) (int, error) {
	c.writeCh <- p
	ret := <-c.writeReturn
	return ret.n, ret.err
}

// Feed hands buf to the next pending Read call, completing it with
// (n, err).
func (c *SyncConn) Feed(buf []byte, n int, err error) {
	c.readCh <- buf
	c.readReturn <- ioReturn{n, err}
}

// Read implements net.Conn, rendezvousing with Feed.
func (c *SyncConn) Read(p []byte) (int, error) {
	buf := <-c.readCh
	copy(p, buf)
	ret := <-c.readReturn
	return ret.n, ret.err
}

// ResetClose re-arms WaitClose after a prior Close/WaitClose cycle.
func (c *SyncConn) ResetClose() { c.closeWG.Add(1) }

// WaitClose blocks until Close has been called.
func (c *SyncConn) WaitClose() { c.closeWG.Wait() }

func (c *SyncConn) Close() error {
	c.closeWG.Done()
	return nil
}

func (c *SyncConn) LocalAddr() net.Addr                { panic(panicMsg) }
func (c *SyncConn) RemoteAddr() net.Addr               { panic(panicMsg) }
func (c *SyncConn) SetDeadline(_ time.Time) error      { panic(panicMsg) }
func (c *SyncConn) SetReadDeadline(_ time.Time) error  { panic(panicMsg) }
func (c *SyncConn) SetWriteDeadline(_ time.Time) error { panic(panicMsg) }
