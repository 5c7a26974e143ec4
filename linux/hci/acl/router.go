package acl

import (
	"github.com/rigado/aclmgr/linux/hci"
)

// dequeueAndRouteAclPacket wakes once per available fragment on the
// transport's ACL queue and hands it to the owning connection's
// reassembler. Invalid fragments and unknown or ignored handles are
// dropped quietly.
func (i *impl) dequeueAndRouteAclPacket() {
	b := i.hciEnd.TryDequeue()
	if b == nil {
		return
	}

	packet := hci.AclPacket(b)
	if !packet.Valid() {
		logger.Info("dropping invalid packet", "size", len(b))
		return
	}

	handle := packet.Handle()
	if handle == hci.QualcommDebugHandle {
		return
	}

	conn := i.lookup(handle)
	if conn == nil {
		logger.Infof("dropping packet of size %d to unknown connection 0x%03x", len(b), handle)
		return
	}

	conn.onIncomingPacket(packet)
}
