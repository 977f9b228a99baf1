/*
Package transport wraps a framed byte stream with auto-PONG interception,
ping-timeout supervision, and a sink/stream split, grounded on the
teacher's inet/client.go pump/siphon goroutine pair and inet/queue.go FIFO.
*/
package transport

import (
	"io"
	"sync"
	"time"

	"github.com/aarondl/irccore/codec"
	"github.com/aarondl/irccore/ircerr"
	"github.com/aarondl/irccore/proto"
)

// readBufferSize is the chunk size used for each conn.Read call, matching
// the teacher's inet/client.go bufferSize.
const readBufferSize = 16348

// Default ping supervision intervals, per spec.md §6's documented
// defaults: 180s of read-side inactivity tolerated, then 10s grace before
// the connection is declared dead.
const (
	DefaultPingTime    = 180 * time.Second
	DefaultPingTimeout = 10 * time.Second
)

// Item is a single inbound item yielded by a Supervisor's stream: either a
// successfully decoded message, or a non-fatal decode error (the stream
// continues), or a fatal error (Fatal is set and the stream closes after
// this item).
type Item[T any] struct {
	Message T
	Err     error
	Fatal   bool
}

// Supervisor owns a framed bidirectional byte stream, presenting it as an
// outbound Sender and an inbound, at-most-once-takeable stream. It
// auto-replies to PING with PONG before the message reaches the
// application, and closes the connection with a PingTimeout error if no
// inbound frame arrives within ping_time+ping_timeout.
type Supervisor[T any] struct {
	conn io.ReadWriteCloser
	c    codec.Codec[T]
	ops  proto.WireCommand[T]

	pingTime    time.Duration
	pingTimeout time.Duration

	out *queue[T]

	streamMu    sync.Mutex
	streamTaken bool
	streamCh    chan Item[T]

	activityMu sync.Mutex
	lastActive time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// New constructs a Supervisor over conn, using c to frame the byte stream
// and ops to recognize/build the PING/PONG pair needed for auto-reply. A
// pingTime or pingTimeout of 0 takes the package default.
func New[T any](conn io.ReadWriteCloser, c codec.Codec[T], ops proto.WireCommand[T], pingTime, pingTimeout time.Duration) *Supervisor[T] {
	if pingTime == 0 {
		pingTime = DefaultPingTime
	}
	if pingTimeout == 0 {
		pingTimeout = DefaultPingTimeout
	}
	return &Supervisor[T]{
		conn:        conn,
		c:           c,
		ops:         ops,
		pingTime:    pingTime,
		pingTimeout: pingTimeout,
		out:         newQueue[T](),
		streamCh:    make(chan Item[T]),
		lastActive:  time.Now(),
		done:        make(chan struct{}),
	}
}

// Start spawns the read, write, and ping-supervision goroutines. It must
// be called exactly once.
func (s *Supervisor[T]) Start() {
	go s.writeLoop()
	go s.readLoop()
	go s.superviseLoop()
}

// Sender returns the outbound half. Cheap to call repeatedly; every
// returned Sender shares the same underlying queue.
func (s *Supervisor[T]) Sender() *Sender[T] {
	return &Sender[T]{q: s.out}
}

// Stream returns the inbound half. A second call returns
// KindStreamAlreadyConfigured, per spec.md's at-most-once takeout
// invariant.
func (s *Supervisor[T]) Stream() (<-chan Item[T], error) {
	s.streamMu.Lock()
	defer s.streamMu.Unlock()
	if s.streamTaken {
		return nil, ircerr.New(ircerr.KindStreamAlreadyConfigured, "transport: stream already taken")
	}
	s.streamTaken = true
	return s.streamCh, nil
}

// Close closes the underlying connection and the outbound queue. Safe to
// call more than once and from any goroutine.
func (s *Supervisor[T]) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.out.close()
		err = s.conn.Close()
		close(s.done)
	})
	return err
}

func (s *Supervisor[T]) touchActivity() {
	s.activityMu.Lock()
	s.lastActive = time.Now()
	s.activityMu.Unlock()
}

func (s *Supervisor[T]) idleFor() time.Duration {
	s.activityMu.Lock()
	defer s.activityMu.Unlock()
	return time.Since(s.lastActive)
}

// writeLoop drains the outbound queue in FIFO order and writes each
// encoded item to the wire. It returns once the queue is closed and
// drained; the queue is closed only by Close (called by the application,
// by superviseLoop on timeout, or by readLoop on a read error). Senders
// going out of use close nothing. writeLoop itself calls Close only when a
// write fails.
func (s *Supervisor[T]) writeLoop() {
	for {
		item, ok := s.out.dequeue()
		if !ok {
			return
		}
		b, err := s.c.Encode(item)
		if err != nil {
			continue
		}
		if _, err := s.conn.Write(b); err != nil {
			s.Close()
			return
		}
	}
}

// readLoop decodes frames from the connection: after decoding every
// complete line, the remaining undecoded bytes are copied to the front of
// the buffer and the next conn.Read appends after them, mirroring the
// teacher's extractMessages/findChunks shift, but driven by the
// codec.Codec[T] consumed-count contract rather than a fixed \r\n scan.
// An incomplete line is scanned again from its start after each read.
func (s *Supervisor[T]) readLoop() {
	buf := make([]byte, readBufferSize)
	pos := 0

	emit := func(it Item[T]) bool {
		select {
		case s.streamCh <- it:
			return true
		case <-s.done:
			return false
		}
	}

	for {
		n, err := s.conn.Read(buf[pos:])
		if n > 0 {
			pos += n
			data := buf[:pos]
			consumedTotal := 0

			for {
				item, consumed, decErr := s.c.Decode(data[consumedTotal:])
				if consumed == 0 {
					break
				}
				consumedTotal += consumed

				if decErr != nil {
					if !emit(Item[T]{Err: decErr}) {
						return
					}
					continue
				}

				s.touchActivity()
				s.interceptPing(item)
				if !emit(Item[T]{Message: item}) {
					return
				}
			}

			remaining := copy(buf, data[consumedTotal:])
			pos = remaining

			if pos == len(buf) {
				grown := make([]byte, len(buf)*2)
				copy(grown, buf[:pos])
				buf = grown
			}
		}

		if err != nil {
			emit(Item[T]{Err: ircerr.Wrap(ircerr.KindIO, err, "transport: read failed"), Fatal: true})
			s.Close()
			return
		}
	}
}

// interceptPing replies to a PING with PONG on the same tick the PING was
// observed, before the application ever sees it — the same interception
// point the teacher's bot/core_handler.go uses for irc.PING.
func (s *Supervisor[T]) interceptPing(item T) {
	payload, isPing := s.ops.AsPing(item)
	if !isPing {
		return
	}
	s.out.enqueue(s.ops.NewPong(payload))
}

// superviseLoop polls activity at a fraction of the ping timeout and
// closes the connection with a PingTimeout error once the server has been
// silent for pingTime+pingTimeout. Absence of inbound traffic alone is
// sufficient to trip this: RFC-conforming servers are expected to PING
// first, so no separate send-side keepalive is required.
func (s *Supervisor[T]) superviseLoop() {
	interval := s.pingTimeout / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	deadline := s.pingTime + s.pingTimeout

	for {
		select {
		case <-ticker.C:
			if s.idleFor() >= deadline {
				select {
				case s.streamCh <- Item[T]{
					Err:   ircerr.New(ircerr.KindPingTimeout, "transport: ping timeout"),
					Fatal: true,
				}:
				case <-s.done:
				}
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}
