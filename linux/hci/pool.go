package hci

import (
	"bytes"
	"sync"
)

// Pool holds the pre-allocated TX buffers that mirror the controller's
// ACL buffer count. A buffer held by a Client is one in-flight packet
// credit; it returns to the pool when the controller reports the packet
// completed [Vol 2, Part E, 4.1.1].
type Pool struct {
	mu   sync.Mutex
	free []*bytes.Buffer
	size int
}

func NewPool(size, cnt int) *Pool {
	p := &Pool{size: size}
	for i := 0; i < cnt; i++ {
		b := new(bytes.Buffer)
		b.Grow(size)
		p.free = append(p.free, b)
	}
	return p
}

func (p *Pool) get() *bytes.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return nil
	}
	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	b.Reset()
	return b
}

func (p *Pool) put(b *bytes.Buffer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, b)
}

// Client tracks the buffers one connection has in flight. Put returns
// the oldest outstanding buffer; PutAll recycles everything, which is
// what reclaims credits when a link goes away [Vol 2, Part E, 4.3].
type Client struct {
	pool *Pool
	mu   sync.Mutex
	used []*bytes.Buffer
}

func NewClient(p *Pool) *Client {
	return &Client{pool: p}
}

// Get takes a buffer from the pool, or nil when the controller is out of
// credits.
func (c *Client) Get() *bytes.Buffer {
	b := c.pool.get()
	if b == nil {
		return nil
	}
	c.mu.Lock()
	c.used = append(c.used, b)
	c.mu.Unlock()
	return b
}

func (c *Client) Put() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.used) == 0 {
		return
	}
	b := c.used[0]
	c.used = c.used[1:]
	c.pool.put(b)
}

func (c *Client) PutAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.used {
		c.pool.put(b)
	}
	c.used = nil
}

// Outstanding reports how many credits this client currently holds.
func (c *Client) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.used)
}
