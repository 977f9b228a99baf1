package transport

import "github.com/aarondl/irccore/ircerr"

// Sender is a cloneable handle over a Transport Supervisor's outbound
// queue. Sending is nonblocking relative to the wire: the write task
// drains the queue in FIFO order on its own goroutine. Cloning produces
// an independent handle that shares the same underlying queue, so sends
// from different clones interleave but each clone's own sequence is
// preserved — grounded on the teacher's inet/queue.go-backed write path
// (inet/client.go's pump/Queue), generalized from a single owning
// IrcClient to a value cloneable by the application.
type Sender[T any] struct {
	q *queue[T]
}

// Send enqueues item for delivery. It fails with a KindAsyncChannelClosed
// ircerr.Error iff the write task has already terminated (the queue was
// closed), never because of backpressure.
func (s *Sender[T]) Send(item T) error {
	if !s.q.enqueue(item) {
		return ircerr.New(ircerr.KindAsyncChannelClosed, "transport: sender queue closed")
	}
	return nil
}

// Clone returns an independent Sender sharing the same outbound queue.
func (s *Sender[T]) Clone() *Sender[T] {
	return &Sender[T]{q: s.q}
}
