package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

func (i *impl) onIncomingConnection(b []byte) {
	request := evt.ConnectionRequest(b)
	if !request.Valid() {
		logger.Error("received connection request with invalid packet")
		return
	}
	address := aclmgr.Addr(request.BdAddr())
	if i.clientCallbacks == nil {
		logger.Error("no callbacks to call, rejecting connection request", "peer", address.String())
		i.rejectConnection(address, uint8(hci.ErrLimitedResource))
		return
	}
	if i.isClassicLinkAlreadyConnected(address) {
		i.rejectConnection(address, uint8(hci.ErrBDADDR))
	} else if i.shouldAcceptConnection(address, request.ClassOfDevice()) {
		i.connecting[address] = true
		i.acceptConnection(address)
	} else {
		i.rejectConnection(address, uint8(hci.ErrLimitedResource))
	}
}

func (i *impl) onClassicConnectionComplete(address aclmgr.Addr) {
	if !i.connecting[address] {
		logger.Warn("no prior connection request", "peer", address.String())
		return
	}
	delete(i.connecting, address)
}

func (i *impl) onConnectionComplete(b []byte) {
	connectionComplete := evt.ConnectionComplete(b)
	if !connectionComplete.Valid() {
		logger.Error("received connection complete with invalid packet")
		return
	}
	status := connectionComplete.Status()
	address := aclmgr.Addr(connectionComplete.BdAddr())
	i.onClassicConnectionComplete(address)
	if status != 0 {
		if i.clientCallbacks != nil {
			cb, reason := i.clientCallbacks, hci.ErrCommand(status)
			i.clientHandler.Post(func() { cb.OnConnectFail(address, reason) })
		}
		i.drainPendingOutgoingConnections()
		return
	}

	handle := connectionComplete.ConnectionHandle()
	conn := newAclConnection(handle, aclmgr.AddrWithType{Addr: address, Type: aclmgr.PublicDevice},
		hci.RoleMaster, linkClassic, i.handler)
	i.muConns.Lock()
	i.connections[handle] = conn
	i.muConns.Unlock()

	sched, downEnd := i.scheduler, conn.queue.DownEnd()
	i.hciLayer.HciHandler().Post(func() { sched.Register(handle, downEnd) })

	if i.clientCallbacks != nil {
		cb := i.clientCallbacks
		proxy := &ClassicConn{manager: i, handle: handle, addr: address}
		i.clientHandler.Post(func() { cb.OnConnectSuccess(proxy) })
	}

	i.drainPendingOutgoingConnections()
}

// drainPendingOutgoingConnections issues the next queued Create
// Connection, skipping peers that connected in the meantime.
func (i *impl) drainPendingOutgoingConnections() {
	for len(i.pendingOutgoingConnections) > 0 {
		next := i.pendingOutgoingConnections[0]
		i.pendingOutgoingConnections = i.pendingOutgoingConnections[1:]
		if i.isClassicLinkAlreadyConnected(next.addr) {
			continue
		}
		i.connecting[next.addr] = true
		i.hciLayer.EnqueueCommandWithStatus(next.packet,
			i.checkCommandStatus((&cmd.CreateConnection{}).OpCode(), "create connection"), i.handler)
		return
	}
}

func (i *impl) onDisconnectionComplete(b []byte) {
	disconnectionComplete := evt.DisconnectionComplete(b)
	if !disconnectionComplete.Valid() {
		logger.Error("received disconnection complete with invalid packet")
		return
	}
	handle := disconnectionComplete.ConnectionHandle()
	status := disconnectionComplete.Status()
	if status != 0 {
		logger.Errorf("received disconnection complete with error code %s, handle 0x%03x",
			hci.ErrCommand(status).Error(), handle)
		return
	}
	conn := i.lookup(handle)
	if conn == nil {
		logger.Warnf("disconnection complete for unknown handle 0x%03x", handle)
		return
	}
	i.muConns.Lock()
	conn.isDisconnected = true
	conn.disconnectReason = hci.ErrCommand(disconnectionComplete.Reason())
	i.muConns.Unlock()

	sched := i.scheduler
	i.hciLayer.HciHandler().Post(func() { sched.SetDisconnect(handle) })

	conn.callDisconnectCallback()
}

func (i *impl) onAuthenticationComplete(b []byte) {
	authenticationComplete := evt.AuthenticationComplete(b)
	if !authenticationComplete.Valid() {
		logger.Error("received authentication complete with invalid packet")
		return
	}
	if status := authenticationComplete.Status(); status != 0 {
		logger.Errorf("received authentication complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(authenticationComplete.ConnectionHandle())
	if conn == nil {
		logger.Warn("authentication complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		conn.cmHandler.Post(func() { cb.OnAuthenticationComplete() })
	}
}

func (i *impl) onConnectionPacketTypeChanged(b []byte) {
	packetTypeChanged := evt.ConnectionPacketTypeChanged(b)
	if !packetTypeChanged.Valid() {
		logger.Error("received connection packet type changed with invalid packet")
		return
	}
	if status := packetTypeChanged.Status(); status != 0 {
		logger.Errorf("received connection packet type changed with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(packetTypeChanged.ConnectionHandle())
	if conn == nil {
		logger.Warn("connection packet type changed for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, packetType := conn.cmCallbacks, packetTypeChanged.PacketType()
		conn.cmHandler.Post(func() { cb.OnConnectionPacketTypeChanged(packetType) })
	}
}

func (i *impl) onMasterLinkKeyComplete(b []byte) {
	completeView := evt.MasterLinkKeyComplete(b)
	if !completeView.Valid() {
		logger.Error("received master link key complete with invalid packet")
		return
	}
	if status := completeView.Status(); status != 0 {
		logger.Errorf("received master link key complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(completeView.ConnectionHandle())
	if conn == nil {
		logger.Warn("master link key complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, keyFlag := conn.cmCallbacks, completeView.KeyFlag()
		conn.cmHandler.Post(func() { cb.OnMasterLinkKeyComplete(keyFlag) })
	}
}

func (i *impl) onChangeConnectionLinkKeyComplete(b []byte) {
	completeView := evt.ChangeConnectionLinkKeyComplete(b)
	if !completeView.Valid() {
		logger.Error("received change connection link key complete with invalid packet")
		return
	}
	if status := completeView.Status(); status != 0 {
		logger.Errorf("received change connection link key complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(completeView.ConnectionHandle())
	if conn == nil {
		logger.Warn("change connection link key complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		conn.cmHandler.Post(func() { cb.OnChangeConnectionLinkKeyComplete() })
	}
}

func (i *impl) onReadClockOffsetComplete(b []byte) {
	completeView := evt.ReadClockOffsetComplete(b)
	if !completeView.Valid() {
		logger.Error("received read clock offset complete with invalid packet")
		return
	}
	if status := completeView.Status(); status != 0 {
		logger.Errorf("received read clock offset complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(completeView.ConnectionHandle())
	if conn == nil {
		logger.Warn("read clock offset complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, clockOffset := conn.cmCallbacks, completeView.ClockOffset()
		conn.cmHandler.Post(func() { cb.OnReadClockOffsetComplete(clockOffset) })
	}
}

func (i *impl) onModeChange(b []byte) {
	modeChange := evt.ModeChange(b)
	if !modeChange.Valid() {
		logger.Error("received mode change with invalid packet")
		return
	}
	if status := modeChange.Status(); status != 0 {
		logger.Errorf("received mode change with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(modeChange.ConnectionHandle())
	if conn == nil {
		logger.Warn("mode change for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, mode, interval := conn.cmCallbacks, modeChange.CurrentMode(), modeChange.Interval()
		conn.cmHandler.Post(func() { cb.OnModeChange(mode, interval) })
	}
}

func (i *impl) onQosSetupComplete(b []byte) {
	completeView := evt.QosSetupComplete(b)
	if !completeView.Valid() {
		logger.Error("received qos setup complete with invalid packet")
		return
	}
	if status := completeView.Status(); status != 0 {
		logger.Errorf("received qos setup complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(completeView.ConnectionHandle())
	if conn == nil {
		logger.Warn("qos setup complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		serviceType := completeView.ServiceType()
		tokenRate := completeView.TokenRate()
		peakBandwidth := completeView.PeakBandwidth()
		latency := completeView.Latency()
		delayVariation := completeView.DelayVariation()
		conn.cmHandler.Post(func() {
			cb.OnQosSetupComplete(serviceType, tokenRate, peakBandwidth, latency, delayVariation)
		})
	}
}

// onRoleChange carries an address, not a handle; it fans out to every
// connection with that peer.
func (i *impl) onRoleChange(b []byte) {
	roleChange := evt.RoleChange(b)
	if !roleChange.Valid() {
		logger.Error("received role change with invalid packet")
		return
	}
	if status := roleChange.Status(); status != 0 {
		logger.Errorf("received role change with error code %s", hci.ErrCommand(status).Error())
		return
	}
	bdAddr := aclmgr.Addr(roleChange.BdAddr())
	newRole := roleChange.NewRole()

	i.muConns.Lock()
	defer i.muConns.Unlock()
	for _, conn := range i.connections {
		if conn.peer.Addr != bdAddr {
			continue
		}
		conn.role = newRole
		if conn.cmCallbacks != nil {
			cb := conn.cmCallbacks
			conn.cmHandler.Post(func() { cb.OnRoleChange(newRole) })
		}
	}
}

func (i *impl) onFlowSpecificationComplete(b []byte) {
	completeView := evt.FlowSpecificationComplete(b)
	if !completeView.Valid() {
		logger.Error("received flow specification complete with invalid packet")
		return
	}
	if status := completeView.Status(); status != 0 {
		logger.Errorf("received flow specification complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(completeView.ConnectionHandle())
	if conn == nil {
		logger.Warn("flow specification complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		flowDirection := completeView.FlowDirection()
		serviceType := completeView.ServiceType()
		tokenRate := completeView.TokenRate()
		tokenBucketSize := completeView.TokenBucketSize()
		peakBandwidth := completeView.PeakBandwidth()
		accessLatency := completeView.AccessLatency()
		conn.cmHandler.Post(func() {
			cb.OnFlowSpecificationComplete(flowDirection, serviceType, tokenRate, tokenBucketSize,
				peakBandwidth, accessLatency)
		})
	}
}

func (i *impl) onFlushOccurred(b []byte) {
	flushOccurred := evt.FlushOccurred(b)
	if !flushOccurred.Valid() {
		logger.Error("received flush occurred with invalid packet")
		return
	}
	conn := i.lookup(flushOccurred.Handle())
	if conn == nil {
		logger.Warn("flush occurred for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		conn.cmHandler.Post(func() { cb.OnFlushOccurred() })
	}
}

func (i *impl) onReadRemoteSupportedFeaturesComplete(b []byte) {
	view := evt.ReadRemoteSupportedFeaturesComplete(b)
	if !view.Valid() {
		logger.Error("received read remote supported features complete with invalid packet")
		return
	}
	if status := view.Status(); status != 0 {
		logger.Errorf("received read remote supported features complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(view.ConnectionHandle())
	if conn == nil {
		logger.Warn("read remote supported features complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, features := conn.cmCallbacks, view.LmpFeatures()
		conn.cmHandler.Post(func() { cb.OnReadRemoteSupportedFeaturesComplete(features) })
	}
}

func (i *impl) onReadRemoteExtendedFeaturesComplete(b []byte) {
	view := evt.ReadRemoteExtendedFeaturesComplete(b)
	if !view.Valid() {
		logger.Error("received read remote extended features complete with invalid packet")
		return
	}
	if status := view.Status(); status != 0 {
		logger.Errorf("received read remote extended features complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(view.ConnectionHandle())
	if conn == nil {
		logger.Warn("read remote extended features complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		page, maxPage, features := view.PageNumber(), view.MaxPageNumber(), view.ExtendedLmpFeatures()
		conn.cmHandler.Post(func() { cb.OnReadRemoteExtendedFeaturesComplete(page, maxPage, features) })
	}
}

func (i *impl) onReadRemoteVersionInformationComplete(b []byte) {
	view := evt.ReadRemoteVersionInformationComplete(b)
	if !view.Valid() {
		logger.Error("received read remote version information complete with invalid packet")
		return
	}
	if status := view.Status(); status != 0 {
		logger.Errorf("received read remote version information complete with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(view.ConnectionHandle())
	if conn == nil {
		logger.Warn("read remote version information complete for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb := conn.cmCallbacks
		version, manufacturer, subversion := view.Version(), view.ManufacturerName(), view.Subversion()
		conn.cmHandler.Post(func() { cb.OnReadRemoteVersionInformationComplete(version, manufacturer, subversion) })
	}
}

func (i *impl) onLinkSupervisionTimeoutChanged(b []byte) {
	view := evt.LinkSupervisionTimeoutChanged(b)
	if !view.Valid() {
		logger.Error("received link supervision timeout changed with invalid packet")
		return
	}
	conn := i.lookup(view.ConnectionHandle())
	if conn == nil {
		logger.Warn("link supervision timeout changed for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, timeout := conn.cmCallbacks, view.LinkSupervisionTimeout()
		conn.cmHandler.Post(func() { cb.OnLinkSupervisionTimeoutChanged(timeout) })
	}
}

// security.CallbackListener

func (i *impl) OnDeviceBonded(device aclmgr.AddrWithType)     {}
func (i *impl) OnDeviceUnbonded(device aclmgr.AddrWithType)   {}
func (i *impl) OnDeviceBondFailed(device aclmgr.AddrWithType) {}

// OnEncryptionStateChanged routes an encryption change, delivered via
// the security module, to the connection's management callbacks.
func (i *impl) OnEncryptionStateChanged(view evt.EncryptionChange) {
	if !view.Valid() {
		logger.Error("received encryption change with invalid packet")
		return
	}
	if status := view.Status(); status != 0 {
		logger.Errorf("received encryption change with error code %s", hci.ErrCommand(status).Error())
		return
	}
	conn := i.lookup(view.ConnectionHandle())
	if conn == nil {
		logger.Warn("encryption change for unknown handle")
		return
	}
	if conn.cmCallbacks != nil {
		cb, enabled := conn.cmCallbacks, view.EncryptionEnabled()
		conn.cmHandler.Post(func() { cb.OnEncryptionChange(enabled) })
	}
}
