package hci

import "sync"

// Handler is a serial task queue. Everything posted to a Handler runs on
// a single goroutine in FIFO order, which is what gives the connection
// table its single-writer discipline.
type Handler struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool
	wg     sync.WaitGroup
}

func NewHandler() *Handler {
	h := &Handler{}
	h.cond = sync.NewCond(&h.mu)
	h.wg.Add(1)
	go h.run()
	return h
}

// Post enqueues f for execution. It never blocks; tasks posted after
// Close are dropped.
func (h *Handler) Post(f func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.tasks = append(h.tasks, f)
	h.cond.Signal()
}

// Sync posts a no-op and waits until it has run. All tasks posted before
// the call have completed when it returns. Used by tests and shutdown.
func (h *Handler) Sync() {
	done := make(chan struct{})
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.tasks = append(h.tasks, func() { close(done) })
	h.cond.Signal()
	h.mu.Unlock()
	<-done
}

// Close drains already-posted tasks and stops the goroutine.
func (h *Handler) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.cond.Signal()
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Handler) run() {
	defer h.wg.Done()
	for {
		h.mu.Lock()
		for len(h.tasks) == 0 && !h.closed {
			h.cond.Wait()
		}
		if len(h.tasks) == 0 && h.closed {
			h.mu.Unlock()
			return
		}
		f := h.tasks[0]
		h.tasks = h.tasks[1:]
		h.mu.Unlock()
		f()
	}
}
