package acl

import (
	"sync"
	"sync/atomic"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
)

type linkKind uint8

const (
	linkClassic linkKind = iota
	linkLe
)

func (k linkKind) String() string {
	if k == linkLe {
		return "le"
	}
	return "classic"
}

// aclConnection is the per-handle record. It is owned by the manager's
// connection table; mutations happen on the manager handler, lookups may
// come from proxy callers under the table mutex.
type aclConnection struct {
	handle uint16
	peer   aclmgr.AddrWithType
	role   uint8
	kind   linkKind

	handler *hci.Handler // manager handler

	queue *hci.Queue

	isDisconnected   bool
	disconnectReason hci.ErrCommand

	onDisconnect      func(hci.ErrCommand)
	disconnectHandler *hci.Handler

	cmCallbacks ConnectionManagementCallbacks
	cmHandler   *hci.Handler

	leCallbacks LeConnectionManagementCallbacks
	leHandler   *hci.Handler

	// at most one in-flight LE connection update
	onConnectionUpdate      func(hci.ErrCommand)
	connectionUpdateHandler *hci.Handler

	// L2CAP PDU recombination [Vol 3, Part A, 7.2.2]
	recombination  []byte
	remainingBytes int

	enqueueRegistered atomic.Bool
	muIncoming        sync.Mutex
	incoming          [][]byte
}

func newAclConnection(handle uint16, peer aclmgr.AddrWithType, role uint8, kind linkKind, handler *hci.Handler) *aclConnection {
	return &aclConnection{
		handle:  handle,
		peer:    peer,
		role:    role,
		kind:    kind,
		handler: handler,
		queue:   hci.NewQueue(hci.MaxQueuedPacketsPerConnection),
	}
}

// onIncomingPacket joins HCI ACL fragments into whole L2CAP PDUs and
// feeds them to the inbound queue.
func (c *aclConnection) onIncomingPacket(pkt hci.AclPacket) {
	payload := pkt.Payload()
	payloadSize := len(payload)

	switch pkt.Pbf() {
	case hci.PbfFirstNonFlushable:
		logger.Error("controller is not allowed to send FIRST_NON_AUTOMATICALLY_FLUSHABLE to host except loopback mode")
		return

	case hci.PbfContinuing:
		if c.remainingBytes < payloadSize {
			logger.Warn("remote sent unexpected L2CAP PDU, dropping entire PDU", "handle", c.handle)
			c.recombination = nil
			c.remainingBytes = 0
			return
		}
		c.remainingBytes -= payloadSize
		c.recombination = append(c.recombination, payload...)
		if c.remainingBytes != 0 {
			return
		}
		payload = c.recombination
		c.recombination = nil

	case hci.PbfFirstFlushable:
		if len(c.recombination) > 0 {
			logger.Error("controller sent a starting packet without finishing previous packet, dropping previous one", "handle", c.handle)
			c.recombination = nil
			c.remainingBytes = 0
		}
		pduSize := l2capPduSize(payload)
		if payloadSize < hci.L2capHeaderSize {
			return
		}
		c.remainingBytes = pduSize - (payloadSize - hci.L2capHeaderSize)
		if c.remainingBytes > 0 {
			c.recombination = append([]byte(nil), payload...)
			return
		}

	default:
		logger.Error("invalid packet boundary flag", "pbf", pkt.Pbf())
		return
	}

	c.muIncoming.Lock()
	if len(c.incoming) > hci.MaxQueuedPacketsPerConnection {
		c.muIncoming.Unlock()
		logger.Error("dropping packet due to congestion from remote", "peer", c.peer.String())
		return
	}
	c.incoming = append(c.incoming, payload)
	c.muIncoming.Unlock()

	if !c.enqueueRegistered.Swap(true) {
		c.queue.DownEnd().RegisterEnqueue(c.handler, c.onIncomingDataReady)
	}
}

// onIncomingDataReady is the producer the inbound queue pulls from. It
// runs whenever the queue has room; registration drops once the staging
// buffer drains.
func (c *aclConnection) onIncomingDataReady() []byte {
	c.muIncoming.Lock()
	if len(c.incoming) == 0 {
		c.muIncoming.Unlock()
		if c.enqueueRegistered.Swap(false) {
			c.queue.DownEnd().UnregisterEnqueue()
		}
		return nil
	}
	p := c.incoming[0]
	c.incoming = c.incoming[1:]
	empty := len(c.incoming) == 0
	c.muIncoming.Unlock()

	if empty && c.enqueueRegistered.Swap(false) {
		c.queue.DownEnd().UnregisterEnqueue()
	}
	return p
}

func (c *aclConnection) callDisconnectCallback() {
	if c.onDisconnect == nil {
		return
	}
	cb := c.onDisconnect
	c.onDisconnect = nil
	reason := c.disconnectReason
	c.disconnectHandler.Post(func() { cb(reason) })
}

func (c *aclConnection) teardown() {
	if c.enqueueRegistered.Swap(false) {
		c.queue.DownEnd().UnregisterEnqueue()
	}
}

// l2capPduSize returns the PDU size declared by the L2CAP Basic Header
// of a starting fragment, or 0 when the header is short [Vol 2, Part B, 5.3].
func l2capPduSize(payload []byte) int {
	if len(payload) < hci.L2capHeaderSize {
		logger.Error("controller sent an invalid L2CAP starting packet")
		return 0
	}
	return int(payload[0]) | int(payload[1])<<8
}
