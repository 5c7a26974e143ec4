package h4

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"

	"github.com/rigado/aclmgr"
)

var logger = aclmgr.GetLogger()

// H4 packet indicators [Vol 4, Part A, 2].
const (
	commandPacket = 0x01
	aclPacket     = 0x02
	eventPacket   = 0x04
)

const rxQueueSize = 64

type h4 struct {
	sp  io.ReadWriteCloser
	rmu sync.Mutex
	wmu sync.Mutex

	frame   *frame
	rxQueue chan []byte

	done chan struct{}
	cmu  sync.Mutex
}

// New opens an H4-framed UART transport.
func New(opts serial.OpenOptions) (io.ReadWriteCloser, error) {
	// force these
	opts.MinimumReadSize = 0
	opts.InterCharacterTimeout = 100

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open serial port")
	}

	// drop whatever the controller buffered before we attached
	b := make([]byte, 2048)
	sp.Write([]byte{commandPacket, 0x03, 0x0c, 0x00}) // reset
	<-time.After(time.Millisecond * 250)
	if _, err := sp.Read(b); err != nil {
		sp.Close()
		return nil, errors.Wrap(err, "can't flush serial port")
	}

	return newH4(sp), nil
}

// NewSocket attaches to an H4 stream served over TCP, as emulated
// controllers expose.
func NewSocket(addr string, timeout time.Duration) (io.ReadWriteCloser, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "can't dial h4 socket")
	}
	if timeout == 0 {
		timeout = time.Second
	}
	return newH4(&connWithTimeout{c: c, timeout: timeout}), nil
}

func newH4(sp io.ReadWriteCloser) *h4 {
	h := &h4{
		sp:      sp,
		done:    make(chan struct{}),
		rxQueue: make(chan []byte, rxQueueSize),
	}
	h.frame = newFrame(h.rxQueue)

	go h.rxLoop()

	return h
}

func (h *h4) Read(p []byte) (int, error) {
	if !h.isOpen() {
		return 0, io.EOF
	}

	h.rmu.Lock()
	defer h.rmu.Unlock()

	select {
	case t := <-h.rxQueue:
		if len(p) < len(t) {
			return 0, io.ErrShortBuffer
		}
		return copy(p, t), nil

	case <-h.done:
		return 0, io.EOF

	case <-time.After(time.Second):
		// the caller treats a zero-length read as a timeout
		return 0, nil
	}
}

func (h *h4) Write(p []byte) (int, error) {
	if !h.isOpen() {
		return 0, io.EOF
	}

	h.wmu.Lock()
	defer h.wmu.Unlock()
	n, err := h.sp.Write(p)

	return n, errors.Wrap(err, "can't write h4")
}

func (h *h4) Close() error {
	h.cmu.Lock()
	defer h.cmu.Unlock()

	select {
	case <-h.done:
		return nil

	default:
		close(h.done)
		h.rmu.Lock()
		err := h.sp.Close()
		h.rmu.Unlock()

		return errors.Wrap(err, "can't close h4")
	}
}

func (h *h4) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return h.sp != nil
	}
}

func (h *h4) rxLoop() {
	tmp := make([]byte, 512)
	for {
		select {
		case <-h.done:
			return
		default:
			if h.sp == nil {
				logger.Error("h4 rx loop with nil serial port")
				return
			}
		}

		n, err := h.sp.Read(tmp)
		if err != nil || n == 0 {
			continue
		}

		h.frame.Assemble(tmp[:n])
	}
}
