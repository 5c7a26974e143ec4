package hci

import (
	"github.com/rigado/aclmgr/linux/hci/evt"
)

// Command ...
type Command interface {
	OpCode() int
	Len() int
	Marshal([]byte) error
}

// CommandRP ...
type CommandRP interface {
	Unmarshal(b []byte) error
}

// EventHandler receives the parameter bytes of one HCI event, posted on
// the Handler it was registered with.
type EventHandler func(b []byte)

// HciLayer is the transport surface the ACL manager is written against.
// Commands are enqueued with a one-shot reply callback; replies arrive
// later as tasks posted on the supplied Handler.
type HciLayer interface {
	// EnqueueCommand issues a command whose reply is a Command Complete
	// event. The callback receives the complete view.
	EnqueueCommand(c Command, onComplete func(evt.CommandComplete), h *Handler)

	// EnqueueCommandWithStatus issues a command acknowledged by a Command
	// Status event.
	EnqueueCommandWithStatus(c Command, onStatus func(evt.CommandStatus), h *Handler)

	RegisterEventHandler(code int, cb EventHandler, h *Handler)
	UnregisterEventHandler(code int)
	RegisterLeEventHandler(subCode int, cb EventHandler, h *Handler)
	UnregisterLeEventHandler(subCode int)

	// AclQueueEnd returns the host side of the transport's ACL data
	// queue: inbound fragments are dequeued from it, outbound fragments
	// enqueued onto it.
	AclQueueEnd() *QueueEnd

	// HciHandler is the handler the transport (and the round-robin
	// scheduler) runs on.
	HciHandler() *Handler
}

// Controller is the capability query surface of the controller.
type Controller interface {
	// BufferSize returns the controller's ACL data packet length and the
	// total number of ACL data packets it can buffer.
	BufferSize() (pktLen, pktCnt int)

	// LeLocalSupportedFeatures returns the LE feature bit mask
	// [Vol 6, Part B, 4.6].
	LeLocalSupportedFeatures() uint64

	// RegisterCompletedPacketsSink routes Number Of Completed Packets
	// accounting to cb, posted on h.
	RegisterCompletedPacketsSink(cb func(handle uint16, cnt int), h *Handler)
}

// LeExtendedAdvertisingFeatureBit in the LE local supported features mask.
const LeExtendedAdvertisingFeatureBit uint64 = 0x0010
