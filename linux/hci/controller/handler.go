package controller

import (
	"fmt"

	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

func (h *HCI) handlePkt(b []byte) error {
	// Strip the 1-byte HCI header and pass down the rest of the packet.
	t, b := b[0], b[1:]
	switch t {
	case hci.PktTypeACLData:
		return h.handleACL(b)
	case hci.PktTypeEvent:
		return h.handleEvt(b)

		//unhandled stuff
	case hci.PktTypeCommand:
		return fmt.Errorf("unmanaged cmd: % X", b)
	case hci.PktTypeSCOData:
		return fmt.Errorf("unsupported sco packet: % X", b)
	case hci.PktTypeVendor:
		return fmt.Errorf("unsupported vendor packet: % X", b)
	default:
		return fmt.Errorf("invalid packet: 0x%02X % X", t, b)
	}
}

// handleACL pushes the raw ACL packet toward the host side of the queue.
// The manager's ingress router dequeues it there. A full queue drops the
// fragment; the link supervision timeout is the backstop for a stuck host.
func (h *HCI) handleACL(b []byte) error {
	if !h.aclQueue.DownEnd().Enqueue(b) {
		hci.Logger.Warn("acl rx queue full, dropping fragment")
	}
	return nil
}

func (h *HCI) handleEvt(b []byte) error {
	if len(b) < 2 {
		return fmt.Errorf("invalid event packet: % X", b)
	}
	code, plen := int(b[0]), int(b[1])
	if plen != len(b[2:]) {
		return fmt.Errorf("invalid event packet: % X", b)
	}
	payload := b[2:]

	switch code {
	case evt.CommandCompleteCode:
		return h.handleCommandComplete(payload)
	case evt.CommandStatusCode:
		return h.handleCommandStatus(payload)
	case evt.NumberOfCompletedPacketsCode:
		return h.handleNumberOfCompletedPackets(payload)
	case evt.LEMetaCode:
		return h.handleLEMeta(payload)
	}

	h.muEvt.Lock()
	eh := h.evth[code]
	h.muEvt.Unlock()

	if eh != nil {
		eh.handler.Post(func() { eh.cb(payload) })
		return nil
	}
	if code == 0xff { // Ignore vendor events
		return nil
	}
	hci.Logger.Debug("unhandled event", "code", fmt.Sprintf("0x%02X", code))
	return nil
}

func (h *HCI) handleLEMeta(b []byte) error {
	if len(b) < 1 {
		return fmt.Errorf("invalid le meta event")
	}
	subcode := int(b[0])

	h.muEvt.Lock()
	eh := h.subh[subcode]
	h.muEvt.Unlock()

	if eh != nil {
		eh.handler.Post(func() { eh.cb(b) })
		return nil
	}
	hci.Logger.Debug("unhandled le event", "subcode", fmt.Sprintf("0x%02X", subcode))
	return nil
}

func (h *HCI) handleCommandComplete(b []byte) error {
	e := evt.CommandComplete(b)
	if !e.Valid() {
		return fmt.Errorf("invalid command complete: % X", b)
	}
	h.setAllowedCommands(int(e.NumHCICommandPackets()))

	// NOP command, used for flow control purpose [Vol 2, Part E, 4.4]
	// no handling other than setAllowedCommands needed
	if e.CommandOpcode() == 0x0000 {
		return nil
	}

	h.muSent.Lock()
	p, found := h.sent[int(e.CommandOpcode())]
	if found && p.onComplete != nil {
		delete(h.sent, int(e.CommandOpcode()))
	}
	h.muSent.Unlock()

	if !found {
		return fmt.Errorf("can't find the cmd for CommandCompleteEP: % X", e)
	}

	if p.onComplete != nil {
		cb := p.onComplete
		p.handler.Post(func() { cb(b) })
		return nil
	}
	if p.done == nil {
		return fmt.Errorf("command complete for status-only command 0x%04x", e.CommandOpcode())
	}

	select {
	case <-h.done:
		return hci.ErrClosed
	case p.done <- e.ReturnParameters():
		return nil
	}
}

func (h *HCI) handleCommandStatus(b []byte) error {
	e := evt.CommandStatus(b)
	if !e.Valid() {
		err := fmt.Errorf("invalid command status: % X", b)
		h.dispatchError(err)
		return err
	}

	h.setAllowedCommands(int(e.NumHCICommandPackets()))

	h.muSent.Lock()
	p, found := h.sent[int(e.CommandOpcode())]
	if found && p.onStatus != nil {
		delete(h.sent, int(e.CommandOpcode()))
	}
	h.muSent.Unlock()

	if !found {
		return fmt.Errorf("can't find the cmd for CommandStatusEP: % X", e)
	}

	if p.onStatus != nil {
		cb := p.onStatus
		p.handler.Post(func() { cb(b) })
		return nil
	}
	if p.done == nil {
		return fmt.Errorf("command status for complete-only command 0x%04x", e.CommandOpcode())
	}

	select {
	case <-h.done:
		return hci.ErrClosed
	case p.done <- []byte{e.Status()}:
		return nil
	}
}

func (h *HCI) handleNumberOfCompletedPackets(b []byte) error {
	e := evt.NumberOfCompletedPackets(b)
	if !e.Valid() {
		return fmt.Errorf("invalid number of completed packets: % X", b)
	}

	h.muSink.Lock()
	sink, hdlr := h.pktsSink, h.pktsSinkHdlr
	h.muSink.Unlock()
	if sink == nil {
		return nil
	}

	for i := 0; i < int(e.NumberOfHandles()); i++ {
		handle := e.ConnectionHandle(i)
		cnt := int(e.HCNumOfCompletedPackets(i))
		hdlr.Post(func() { sink(handle, cnt) })
	}
	return nil
}
