package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

func (i *impl) onCommonLeConnectionComplete(addressWithType aclmgr.AddrWithType) {
	if !i.connectingLe[addressWithType] {
		logger.Warn("no prior connection request", "peer", addressWithType.String())
		return
	}
	delete(i.connectingLe, addressWithType)
}

func (i *impl) onLeConnectionComplete(b []byte) {
	connectionComplete := evt.LEConnectionComplete(b)
	if !connectionComplete.Valid() {
		logger.Error("received le connection complete with invalid packet")
		return
	}
	status := connectionComplete.Status()
	addressWithType := aclmgr.AddrWithType{
		Addr: aclmgr.Addr(connectionComplete.PeerAddress()),
		Type: aclmgr.AddrType(connectionComplete.PeerAddressType()),
	}
	i.onCommonLeConnectionComplete(addressWithType)
	if status != 0 {
		i.postLeConnectFail(addressWithType, hci.ErrCommand(status))
		return
	}
	i.emplaceLeConnection(connectionComplete.ConnectionHandle(), addressWithType, connectionComplete.Role())
}

func (i *impl) onLeEnhancedConnectionComplete(b []byte) {
	connectionComplete := evt.LEEnhancedConnectionComplete(b)
	if !connectionComplete.Valid() {
		logger.Error("received le enhanced connection complete with invalid packet")
		return
	}
	status := connectionComplete.Status()

	// Report the peer's resolvable private address when the controller
	// resolved one; fall back to the identity the event names otherwise.
	reportingAddress := aclmgr.AddrWithType{
		Addr: aclmgr.Addr(connectionComplete.PeerAddress()),
		Type: aclmgr.AddrType(connectionComplete.PeerAddressType()),
	}
	rpa := aclmgr.Addr(connectionComplete.PeerResolvablePrivateAddress())
	if !rpa.IsZero() {
		reportingAddress = aclmgr.AddrWithType{Addr: rpa, Type: aclmgr.RandomDevice}
	}

	i.onCommonLeConnectionComplete(reportingAddress)
	if status != 0 {
		i.postLeConnectFail(reportingAddress, hci.ErrCommand(status))
		return
	}
	i.emplaceLeConnection(connectionComplete.ConnectionHandle(), reportingAddress, connectionComplete.Role())
}

func (i *impl) postLeConnectFail(addressWithType aclmgr.AddrWithType, reason hci.ErrCommand) {
	if i.leClientCallbacks == nil {
		logger.Warn("le connect failed with no le callbacks registered", "peer", addressWithType.String())
		return
	}
	cb := i.leClientCallbacks
	i.leClientHandler.Post(func() { cb.OnLeConnectFail(addressWithType, reason) })
}

func (i *impl) emplaceLeConnection(handle uint16, addressWithType aclmgr.AddrWithType, role uint8) {
	conn := newAclConnection(handle, addressWithType, role, linkLe, i.handler)
	i.muConns.Lock()
	i.connections[handle] = conn
	i.muConns.Unlock()

	sched, downEnd := i.scheduler, conn.queue.DownEnd()
	i.hciLayer.HciHandler().Post(func() { sched.Register(handle, downEnd) })

	if i.leClientCallbacks != nil {
		cb := i.leClientCallbacks
		proxy := &LeConn{manager: i, handle: handle, addr: addressWithType}
		i.leClientHandler.Post(func() { cb.OnLeConnectSuccess(addressWithType, proxy) })
	}
}

func (i *impl) onLeConnectionUpdateComplete(b []byte) {
	completeView := evt.LEConnectionUpdateComplete(b)
	if !completeView.Valid() {
		logger.Error("received le connection update complete with invalid packet")
		return
	}
	status := completeView.Status()
	if status != 0 {
		logger.Errorf("received le connection update complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	handle := completeView.ConnectionHandle()
	conn := i.lookup(handle)
	if conn == nil {
		logger.Warn("can't find connection", "handle", handle)
		return
	}

	i.muConns.Lock()
	disconnected := conn.isDisconnected
	cb := conn.onConnectionUpdate
	cbHandler := conn.connectionUpdateHandler
	conn.onConnectionUpdate = nil
	conn.connectionUpdateHandler = nil
	i.muConns.Unlock()

	if disconnected {
		logger.Info("already disconnected", "handle", handle)
		return
	}
	if cb != nil {
		reason := hci.ErrCommand(status)
		cbHandler.Post(func() { cb(reason) })
	}
	if conn.leCallbacks != nil {
		lecb := conn.leCallbacks
		interval := completeView.ConnInterval()
		latency := completeView.ConnLatency()
		timeout := completeView.SupervisionTimeout()
		conn.leHandler.Post(func() { lecb.OnConnectionUpdate(interval, latency, timeout) })
	}
}
