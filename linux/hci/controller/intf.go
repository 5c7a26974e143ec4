package controller

import (
	"github.com/rigado/aclmgr/linux/hci"
)

// HCI implements both hci.HciLayer and hci.Controller for the ACL
// manager.

func (h *HCI) RegisterEventHandler(code int, cb hci.EventHandler, handler *hci.Handler) {
	h.muEvt.Lock()
	defer h.muEvt.Unlock()
	h.evth[code] = &eventHandler{cb: cb, handler: handler}
}

func (h *HCI) UnregisterEventHandler(code int) {
	h.muEvt.Lock()
	defer h.muEvt.Unlock()
	delete(h.evth, code)
}

func (h *HCI) RegisterLeEventHandler(subCode int, cb hci.EventHandler, handler *hci.Handler) {
	h.muEvt.Lock()
	defer h.muEvt.Unlock()
	h.subh[subCode] = &eventHandler{cb: cb, handler: handler}
}

func (h *HCI) UnregisterLeEventHandler(subCode int) {
	h.muEvt.Lock()
	defer h.muEvt.Unlock()
	delete(h.subh, subCode)
}

// AclQueueEnd returns the host side of the ACL data queue.
func (h *HCI) AclQueueEnd() *hci.QueueEnd {
	return h.aclQueue.UpEnd()
}

// HciHandler returns the transport task queue.
func (h *HCI) HciHandler() *hci.Handler {
	return h.hciHandler
}

// BufferSize returns the controller's ACL data packet length and count.
func (h *HCI) BufferSize() (int, int) {
	return h.bufSize, h.bufCnt
}

// LeLocalSupportedFeatures returns the LE feature mask read at Init.
func (h *HCI) LeLocalSupportedFeatures() uint64 {
	return h.leFeatures
}

// RegisterCompletedPacketsSink routes Number Of Completed Packets
// accounting to cb, posted on handler.
func (h *HCI) RegisterCompletedPacketsSink(cb func(handle uint16, cnt int), handler *hci.Handler) {
	h.muSink.Lock()
	defer h.muSink.Unlock()
	h.pktsSink = cb
	h.pktsSinkHdlr = handler
}
