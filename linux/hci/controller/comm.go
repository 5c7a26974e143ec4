package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

const (
	chCmdBufChanSize    = 16
	chCmdBufElementSize = 64
	chCmdBufTimeout     = time.Second * 5
)

// Send issues a command and blocks for its reply. Used for the bring-up
// sequence; the ACL manager uses the asynchronous enqueue primitives.
func (h *HCI) Send(c hci.Command, r hci.CommandRP) error {
	b, err := h.send(c, nil)
	if err != nil {
		return err
	}
	if len(b) > 0 && b[0] != 0x00 {
		return hci.ErrCommand(b[0])
	}
	if r != nil {
		return r.Unmarshal(b)
	}
	return nil
}

// EnqueueCommand issues a command whose reply is a Command Complete
// event; the complete view is posted on handler.
func (h *HCI) EnqueueCommand(c hci.Command, onComplete func(evt.CommandComplete), handler *hci.Handler) {
	p := &pkt{cmd: c, handler: handler}
	if onComplete != nil {
		p.onComplete = func(b []byte) { onComplete(evt.CommandComplete(b)) }
	} else {
		p.onComplete = func([]byte) {}
	}
	h.hciHandler.Post(func() {
		if _, err := h.send(c, p); err != nil {
			h.dispatchError(err)
		}
	})
}

// EnqueueCommandWithStatus issues a command acknowledged by a Command
// Status event; the status view is posted on handler.
func (h *HCI) EnqueueCommandWithStatus(c hci.Command, onStatus func(evt.CommandStatus), handler *hci.Handler) {
	p := &pkt{cmd: c, handler: handler}
	if onStatus != nil {
		p.onStatus = func(b []byte) { onStatus(evt.CommandStatus(b)) }
	} else {
		p.onStatus = func([]byte) {}
	}
	h.hciHandler.Post(func() {
		if _, err := h.send(c, p); err != nil {
			h.dispatchError(err)
		}
	})
}

// send marshals and writes one command. With p == nil the call is
// synchronous: it blocks until the reply arrives and returns the raw
// return parameters. With p != nil the reply is routed through p's
// callback and send returns immediately after the write.
func (h *HCI) send(c hci.Command, p *pkt) ([]byte, error) {
	if h.err != nil {
		return nil, h.err
	}

	sync := p == nil
	if sync {
		p = &pkt{cmd: c, done: make(chan []byte)}
	}

	h.muSent.Lock()
	if _, ok := h.sent[c.OpCode()]; ok {
		h.muSent.Unlock()
		return nil, fmt.Errorf("command with opcode 0x%04x pending", c.OpCode())
	}
	h.muSent.Unlock()

	// get buffer w/timeout
	var b []byte
	select {
	case <-h.done:
		return nil, hci.ErrClosed
	case b = <-h.chCmdBufs:
		//ok
	case <-time.After(chCmdBufTimeout):
		err := fmt.Errorf("chCmdBufs get timeout")
		h.dispatchError(err)
		return nil, err
	}

	b[0] = hci.PktTypeCommand // HCI header
	b[1] = byte(c.OpCode())
	b[2] = byte(c.OpCode() >> 8)
	b[3] = byte(c.Len())
	if err := c.Marshal(b[4:]); err != nil {
		h.close(fmt.Errorf("hci: failed to marshal cmd"))
		return nil, h.err
	}

	h.muSent.Lock()
	h.sent[c.OpCode()] = p
	h.muSent.Unlock()

	if !h.isOpen() {
		return nil, hci.ErrClosed
	} else if n, err := h.skt.Write(b[:4+c.Len()]); err != nil {
		h.close(fmt.Errorf("hci: failed to send cmd"))
	} else if n != 4+c.Len() {
		h.close(fmt.Errorf("hci: failed to send whole cmd pkt to hci socket"))
	}

	if !sync {
		return nil, nil
	}

	var ret []byte
	var err error

	// emergency timeout to prevent calls from locking up if the HCI
	// interface doesn't respond. Responses should normally be fast;
	// a timeout indicates a major problem with HCI.
	select {
	case <-time.After(3 * time.Second):
		err = fmt.Errorf("hci: no response to command 0x%04x", c.OpCode())
		h.dispatchError(err)
	case <-h.done:
		err = h.err
	case b, ok := <-p.done:
		if !ok {
			err = hci.ErrClosed
		} else {
			ret = b
		}
	}

	// clear sent table when done, we sometimes get command complete or
	// command status messages with no matching send, which can attempt to
	// access stale packets in sent and fail or lock up.
	h.muSent.Lock()
	delete(h.sent, c.OpCode())
	h.muSent.Unlock()

	return ret, err
}

func (h *HCI) setAllowedCommands(n int) {
	if n > chCmdBufChanSize {
		n = chCmdBufChanSize
	}

	for len(h.chCmdBufs) < n {
		select {
		case <-h.done:
			//closed
			return
		case h.chCmdBufs <- make([]byte, chCmdBufElementSize):
			//ok
		default:
			return
		}
	}
}

func (h *HCI) sktProcessLoop() {
	defer h.cleanup()

	for {
		var p []byte
		var ok bool

		select {
		case <-h.done:
			h.err = io.EOF
			return

		case p, ok = <-h.sktRxChan:
			if !ok {
				h.err = io.EOF
				return
			}
			// will process the bytes below
		}

		if err := h.handlePkt(p); err != nil {
			// Some bluetooth devices may append vendor specific packets at the last,
			// in this case, simply ignore them.
			if strings.HasPrefix(err.Error(), "unsupported vendor packet:") {
				hci.Logger.Error("hci", "skt: ", err)
			} else {
				h.err = fmt.Errorf("skt handle error: %v", err)
				h.dispatchError(h.err)
				return
			}
		}
	}
}

func (h *HCI) sktReadLoop() {
	defer close(h.sktRxChan)

	b := make([]byte, 4096)

	for {
		n, err := h.skt.Read(b)

		switch {
		case n == 0 && err == nil:
			// read timeout
			select {
			case <-h.done:
				return
			default:
				continue
			}

		//callers depend on detecting io.EOF, don't wrap it.
		case err == io.EOF:
			h.err = err
			return

		case err != nil:
			h.err = fmt.Errorf("skt read error: %v", err)
			return

		default:
			// ok
			p := make([]byte, n)
			copy(p, b)
			h.sktRxChan <- p
		}
	}
}
