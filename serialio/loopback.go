package serialio

// LoopbackPort is an in-memory [Port] double driven entirely by the test
// or demo that owns it: nothing reaches real hardware. It records every
// write and serves reads from a queue the caller fills, either by hand
// (QueueResponse) or automatically via Respond.
type LoopbackPort struct {
	// Written accumulates every byte slice passed to Write, in order.
	Written [][]byte

	// Respond, if set, is invoked with the bytes from each Write call; its
	// return value is appended to the read queue, simulating a device that
	// replies to every command it receives. Return nil for no reply.
	Respond func(written []byte) []byte

	pending []byte
}

// NewLoopbackPort returns an empty loopback port.
func NewLoopbackPort() *LoopbackPort {
	return &LoopbackPort{}
}

// QueueResponse appends bytes to the read queue, to be returned by a
// future Read call (or several, if the caller reads in small chunks).
func (p *LoopbackPort) QueueResponse(b []byte) {
	p.pending = append(p.pending, b...)
}

// Write implements [Port].
func (p *LoopbackPort) Write(b []byte) (int, error) {
	cp := append([]byte(nil), b...)
	p.Written = append(p.Written, cp)

	if p.Respond != nil {
		if reply := p.Respond(cp); reply != nil {
			p.QueueResponse(reply)
		}
	}

	return len(b), nil
}

// Read implements [Port]. It drains whatever is queued, up to len(b), and
// reports ErrTimeout once the queue is empty rather than blocking.
func (p *LoopbackPort) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		return 0, ErrTimeout
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}
