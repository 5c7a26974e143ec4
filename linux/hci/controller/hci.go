package controller

import (
	"io"
	"net"
	"sync"

	"github.com/pkg/errors"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
)

const aclQueueSize = 16

type pkt struct {
	cmd  hci.Command
	done chan []byte

	// async reply routing; when set, the reply is posted instead of
	// written to done.
	onComplete func(b []byte)
	onStatus   func(b []byte)
	handler    *hci.Handler
}

type eventHandler struct {
	cb      hci.EventHandler
	handler *hci.Handler
}

// NewHCI returns an hci transport instance. Init must be called before
// use.
func NewHCI(opts ...Option) (*HCI, error) {
	h := &HCI{
		transport: hci.TransportHci(0),
		chCmdBufs: make(chan []byte, chCmdBufChanSize),
		sent:      make(map[int]*pkt),

		evth: make(map[int]*eventHandler),
		subh: make(map[int]*eventHandler),

		aclQueue: hci.NewQueue(aclQueueSize),

		done:      make(chan bool),
		sktRxChan: make(chan []byte, 16),
	}

	h.hciHandler = hci.NewHandler()

	if err := h.Option(opts...); err != nil {
		return nil, errors.Wrap(err, "can't set options")
	}

	return h, nil
}

// HCI implements the transport layer over a raw HCI socket or H4 UART.
// It owns the HCI task queue; the round-robin scheduler and the ACL TX
// drain run on it.
type HCI struct {
	transport hci.Transport
	skt       io.ReadWriteCloser

	hciHandler *hci.Handler

	// Host to Controller command flow control [Vol 2, Part E, 4.4]
	chCmdBufs chan []byte
	muSent    sync.Mutex
	sent      map[int]*pkt

	// registered event handlers
	muEvt sync.Mutex
	evth  map[int]*eventHandler
	subh  map[int]*eventHandler

	// completed ACL packets accounting sink
	muSink       sync.Mutex
	pktsSink     func(handle uint16, cnt int)
	pktsSinkHdlr *hci.Handler

	// controller capabilities
	bufSize    int
	bufCnt     int
	leFeatures uint64
	addr       net.HardwareAddr

	aclQueue *hci.Queue

	errorHandler func(error)
	err          error

	muClose sync.Mutex
	done    chan bool

	sktRxChan chan []byte
}

// Option configures the transport before Init.
type Option func(*HCI) error

// OptTransport selects the controller transport.
func OptTransport(t hci.Transport) Option {
	return func(h *HCI) error {
		h.transport = t
		return nil
	}
}

// OptErrorHandler installs a sink for fatal transport errors.
func OptErrorHandler(f func(error)) Option {
	return func(h *HCI) error {
		h.errorHandler = f
		return nil
	}
}

// Option sets the options specified.
func (h *HCI) Option(opts ...Option) error {
	var err error
	for _, opt := range opts {
		err = opt(h)
	}
	return err
}

// Init opens the transport, starts the socket loops and runs the
// controller bring-up sequence.
func (h *HCI) Init() error {
	var err error
	h.skt, err = hci.OpenTransport(h.transport)
	if err != nil {
		return err
	}

	h.setAllowedCommands(1)

	go h.sktReadLoop()
	go h.sktProcessLoop()

	if err := h.init(); err != nil {
		return err
	}

	// ACL TX drain: fragments enqueued by the scheduler go out the
	// socket in order, on the hci handler.
	down := h.aclQueue.DownEnd()
	down.RegisterDequeue(h.hciHandler, func() {
		p := down.TryDequeue()
		if p == nil {
			return
		}
		if _, err := h.skt.Write(p); err != nil {
			h.dispatchError(errors.Wrap(err, "acl tx"))
		}
	})

	return nil
}

func (h *HCI) init() error {
	hci.Logger.Info("hci reset")
	h.Send(&cmd.Reset{}, nil)

	ReadBDADDRRP := cmd.ReadBDADDRRP{}
	h.Send(&cmd.ReadBDADDR{}, &ReadBDADDRRP)

	a := ReadBDADDRRP.BDADDR
	h.addr = net.HardwareAddr([]byte{a[5], a[4], a[3], a[2], a[1], a[0]})

	// Per Core Spec 5.0, Part E, 7.4.5 this command is not supported by
	// LE only controllers.
	ReadBufferSizeRP := cmd.ReadBufferSizeRP{}
	h.Send(&cmd.ReadBufferSize{}, &ReadBufferSizeRP)

	// Assume the buffers are shared between ACL-U and LE-U.
	h.bufCnt = int(ReadBufferSizeRP.HCTotalNumACLDataPackets)
	h.bufSize = int(ReadBufferSizeRP.HCACLDataPacketLength)

	LEReadBufferSizeRP := cmd.LEReadBufferSizeRP{}
	h.Send(&cmd.LEReadBufferSize{}, &LEReadBufferSizeRP)

	if LEReadBufferSizeRP.HCTotalNumLEDataPackets != 0 {
		// Okay, LE-U do have their own buffers.
		h.bufCnt = int(LEReadBufferSizeRP.HCTotalNumLEDataPackets)
		h.bufSize = int(LEReadBufferSizeRP.HCLEDataPacketLength)
	}

	LEReadLocalSupportedFeaturesRP := cmd.LEReadLocalSupportedFeaturesRP{}
	h.Send(&cmd.LEReadLocalSupportedFeatures{}, &LEReadLocalSupportedFeaturesRP)
	h.leFeatures = LEReadLocalSupportedFeaturesRP.LEFeatures

	LESetEventMaskRP := cmd.LESetEventMaskRP{}
	h.Send(&cmd.LESetEventMask{LEEventMask: 0x000000000000001F}, &LESetEventMaskRP)

	SetEventMaskRP := cmd.SetEventMaskRP{}
	h.Send(&cmd.SetEventMask{EventMask: 0x3dbff807fffbffff}, &SetEventMaskRP)

	return h.err
}

func (h *HCI) cleanup() {
	h.close(nil)

	// fail out anything still waiting for a reply
	h.muSent.Lock()
	for k, p := range h.sent {
		if p.done != nil {
			close(p.done)
		}
		delete(h.sent, k)
	}
	h.muSent.Unlock()

	h.hciHandler.Close()
}

// Close ...
func (h *HCI) Close() error {
	h.muClose.Lock()
	defer h.muClose.Unlock()

	select {
	case <-h.done:
		//already closed, nothing to do
	default:
		close(h.done)
	}

	return nil
}

// Error ...
func (h *HCI) Error() error {
	return h.err
}

func (h *HCI) isOpen() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *HCI) close(err error) error {
	h.err = err
	return h.skt.Close()
}

func (h *HCI) dispatchError(e error) {
	switch {
	case h.errorHandler == nil:
		hci.Logger.Error("hci", "err", e)
	case !h.isOpen():
		//don't dispatch
		hci.Logger.Debug("hci closing", "err", e)
	default:
		h.errorHandler(e)
	}
}

// Addr returns the controller's BD_ADDR.
func (h *HCI) Addr() aclmgr.Addr {
	a := aclmgr.Addr{}
	for i := 0; i < 6 && i < len(h.addr); i++ {
		a[i] = h.addr[5-i]
	}
	return a
}
