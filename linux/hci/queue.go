package hci

import "sync"

// Queue is a bidirectional bounded packet queue linking two components
// that run on different Handlers. The "up" end faces the upper layer
// (L2CAP), the "down" end faces the transport. Each direction preserves
// FIFO order and notifies its consumer by posting onto the Handler the
// consumer registered with.
type Queue struct {
	up, down *QueueEnd
}

func NewQueue(capacity int) *Queue {
	toUp := newQueueDir(capacity)
	toDown := newQueueDir(capacity)
	q := &Queue{}
	q.up = &QueueEnd{rx: toUp, tx: toDown}
	q.down = &QueueEnd{rx: toDown, tx: toUp}
	return q
}

func (q *Queue) UpEnd() *QueueEnd   { return q.up }
func (q *Queue) DownEnd() *QueueEnd { return q.down }

// QueueEnd is one side of a Queue. Enqueue/RegisterEnqueue feed packets
// toward the opposite end; TryDequeue/RegisterDequeue drain packets sent
// by the opposite end.
type QueueEnd struct {
	rx, tx *queueDir
}

// Enqueue appends a packet toward the other end. Returns false when the
// direction is at capacity; the packet is dropped.
func (e *QueueEnd) Enqueue(p []byte) bool { return e.tx.enqueue(p) }

// TryDequeue pops the next packet sent by the other end, or nil.
func (e *QueueEnd) TryDequeue() []byte { return e.rx.tryDequeue() }

// RegisterDequeue arranges for cb to be posted on h whenever a packet is
// available. The callback is expected to call TryDequeue exactly once.
func (e *QueueEnd) RegisterDequeue(h *Handler, cb func()) { e.rx.registerDequeue(h, cb) }

func (e *QueueEnd) UnregisterDequeue() { e.rx.unregisterDequeue() }

// RegisterEnqueue installs a producer that is pulled, on h, while the
// direction has room. A producer returning nil stops the pull until the
// consumer dequeues a packet or the producer is re-registered.
func (e *QueueEnd) RegisterEnqueue(h *Handler, producer func() []byte) {
	e.tx.registerEnqueue(h, producer)
}

func (e *QueueEnd) UnregisterEnqueue() { e.tx.unregisterEnqueue() }

type queueDir struct {
	mu       sync.Mutex
	fifo     [][]byte
	capacity int

	deqHandler   *Handler
	deqCB        func()
	deqScheduled bool

	enqHandler   *Handler
	enqCB        func() []byte
	enqScheduled bool
}

func newQueueDir(capacity int) *queueDir {
	return &queueDir{capacity: capacity}
}

func (d *queueDir) enqueue(p []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.fifo) >= d.capacity {
		return false
	}
	d.fifo = append(d.fifo, p)
	d.scheduleDequeue()
	return true
}

func (d *queueDir) tryDequeue() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.fifo) == 0 {
		return nil
	}
	p := d.fifo[0]
	d.fifo = d.fifo[1:]
	if len(d.fifo) > 0 {
		d.scheduleDequeue()
	}
	d.scheduleEnqueue()
	return p
}

func (d *queueDir) registerDequeue(h *Handler, cb func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deqHandler = h
	d.deqCB = cb
	if len(d.fifo) > 0 {
		d.scheduleDequeue()
	}
}

func (d *queueDir) unregisterDequeue() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deqCB = nil
	d.deqHandler = nil
}

func (d *queueDir) registerEnqueue(h *Handler, producer func() []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqHandler = h
	d.enqCB = producer
	d.scheduleEnqueue()
}

func (d *queueDir) unregisterEnqueue() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enqCB = nil
	d.enqHandler = nil
}

// scheduleDequeue posts at most one pending consumer wake. Caller holds mu.
func (d *queueDir) scheduleDequeue() {
	if d.deqCB == nil || d.deqScheduled {
		return
	}
	d.deqScheduled = true
	d.deqHandler.Post(func() {
		d.mu.Lock()
		d.deqScheduled = false
		cb := d.deqCB
		d.mu.Unlock()
		if cb != nil {
			cb()
		}
	})
}

// scheduleEnqueue posts at most one pending producer pull. Caller holds mu.
func (d *queueDir) scheduleEnqueue() {
	if d.enqCB == nil || d.enqScheduled || len(d.fifo) >= d.capacity {
		return
	}
	d.enqScheduled = true
	d.enqHandler.Post(func() {
		d.mu.Lock()
		d.enqScheduled = false
		cb := d.enqCB
		d.mu.Unlock()
		if cb == nil {
			return
		}
		p := cb()
		d.mu.Lock()
		defer d.mu.Unlock()
		if p != nil && len(d.fifo) < d.capacity {
			d.fifo = append(d.fifo, p)
			d.scheduleDequeue()
			d.scheduleEnqueue()
		}
	})
}
