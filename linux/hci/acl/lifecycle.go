package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

// Outbound Classic connect defaults [Vol 2, Part E, 7.1.5].
const (
	defaultPacketType      = 0xcc18 // DM1/DH1, DM3/DH3, DM5/DH5
	pageScanRepetitionR1   = 0x01
	clockOffsetNone        = 0x0000 // valid bit unset
	allowRoleSwitch        = 0x01
	acceptRoleBecomeMaster = 0x00 // we prefer to be master
)

// Outbound LE connect defaults [Vol 2, Part E, 7.8.12].
const (
	defaultLeScanInterval         = 0x0060
	defaultLeScanWindow           = 0x0030
	initiatorFilterUsePeerAddress = 0x00
	ownAddressRandom              = 0x01
	defaultConnIntervalMin        = 0x0018
	defaultConnIntervalMax        = 0x0028
	defaultConnLatency            = 0x0000
	defaultSupervisionTimeout     = 0x01f4
	minimumCeLength               = 0x0002
	maximumCeLength               = 0x0c00
	phy1M                         = 0x01
)

func (i *impl) createConnection(address aclmgr.Addr) {
	packet := &cmd.CreateConnection{
		BDADDR:                 address,
		PacketType:             defaultPacketType,
		PageScanRepetitionMode: pageScanRepetitionR1,
		ClockOffset:            clockOffsetNone,
		AllowRoleSwitch:        allowRoleSwitch,
	}

	if len(i.connecting) == 0 {
		if i.isClassicLinkAlreadyConnected(address) {
			logger.Warn("already connected", "peer", address.String())
			return
		}
		i.connecting[address] = true
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "create connection"), i.handler)
	} else {
		i.pendingOutgoingConnections = append(i.pendingOutgoingConnections,
			pendingConnection{addr: address, packet: packet})
	}
}

func (i *impl) createLeConnection(addressWithType aclmgr.AddrWithType) {
	i.connectingLe[addressWithType] = true

	if i.controller.LeLocalSupportedFeatures()&hci.LeExtendedAdvertisingFeatureBit != 0 {
		// Controllers require the random address to be set before it is
		// used to establish a connection.
		random := i.addressPolicy.NextRandomAddress()
		i.hciLayer.EnqueueCommand(&cmd.LESetRandomAddress{RandomAddress: random},
			func(evt.CommandComplete) {}, i.handler)

		packet := &cmd.LEExtendedCreateConnection{
			InitiatorFilterPolicy: initiatorFilterUsePeerAddress,
			OwnAddressType:        ownAddressRandom,
			PeerAddressType:       uint8(addressWithType.Type),
			PeerAddress:           addressWithType.Addr,
			InitiatingPHYs:        phy1M,
			ScanInterval:          defaultLeScanInterval,
			ScanWindow:            defaultLeScanWindow,
			ConnIntervalMin:       defaultConnIntervalMin,
			ConnIntervalMax:       defaultConnIntervalMax,
			ConnLatency:           defaultConnLatency,
			SupervisionTimeout:    defaultSupervisionTimeout,
			MinimumCELength:       minimumCeLength,
			MaximumCELength:       maximumCeLength,
		}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "le extended create connection"), i.handler)
		return
	}

	packet := &cmd.LECreateConnection{
		LEScanInterval:        defaultLeScanInterval,
		LEScanWindow:          defaultLeScanWindow,
		InitiatorFilterPolicy: initiatorFilterUsePeerAddress,
		PeerAddressType:       uint8(addressWithType.Type),
		PeerAddress:           addressWithType.Addr,
		OwnAddressType:        ownAddressRandom,
		ConnIntervalMin:       defaultConnIntervalMin,
		ConnIntervalMax:       defaultConnIntervalMax,
		ConnLatency:           defaultConnLatency,
		SupervisionTimeout:    defaultSupervisionTimeout,
		MinimumCELength:       minimumCeLength,
		MaximumCELength:       maximumCeLength,
	}
	i.hciLayer.EnqueueCommandWithStatus(packet,
		i.checkCommandStatus(packet.OpCode(), "le create connection"), i.handler)
}

func (i *impl) cancelConnect(address aclmgr.Addr) {
	if !i.connecting[address] {
		logger.Info("cannot cancel non-existent connection", "peer", address.String())
		return
	}
	// Best effort; the completion is ignored.
	i.hciLayer.EnqueueCommand(&cmd.CreateConnectionCancel{BDADDR: address},
		func(evt.CommandComplete) {}, i.handler)
}

func (i *impl) acceptConnection(address aclmgr.Addr) {
	i.hciLayer.EnqueueCommandWithStatus(
		&cmd.AcceptConnectionRequest{BDADDR: address, Role: acceptRoleBecomeMaster},
		func(status evt.CommandStatus) { i.onAcceptConnectionStatus(address, status) },
		i.handler)
}

// onAcceptConnectionStatus self-cancels the implicit connect when the
// controller refused to accept, so the connecting entry can't wedge.
func (i *impl) onAcceptConnectionStatus(address aclmgr.Addr, status evt.CommandStatus) {
	if !status.Valid() {
		logger.Error("received accept connection status with invalid packet")
		return
	}
	if status.Status() != 0 {
		i.cancelConnect(address)
	}
}

func (i *impl) rejectConnection(address aclmgr.Addr, reason uint8) {
	i.hciLayer.EnqueueCommandWithStatus(
		&cmd.RejectConnectionRequest{BDADDR: address, Reason: reason},
		i.checkCommandStatus((&cmd.RejectConnectionRequest{}).OpCode(), "reject connection request"),
		i.handler)
}

// withLiveConnection runs f on the manager handler if the handle names a
// live, not-yet-disconnected connection. The boolean result is the §7
// "gone handle" contract: false, no HCI traffic.
func (i *impl) withLiveConnection(handle uint16, f func()) bool {
	i.muConns.Lock()
	conn, ok := i.connections[handle]
	if !ok {
		i.muConns.Unlock()
		logger.Warnf("operation on unknown handle 0x%03x", handle)
		return false
	}
	if conn.isDisconnected {
		i.muConns.Unlock()
		logger.Info("already disconnected", "handle", handle)
		return false
	}
	i.muConns.Unlock()
	i.handler.Post(f)
	return true
}

// Disconnect tears the link down. Once the Disconnection Complete has
// arrived it returns false and sends nothing; a call made before then
// sends another Disconnect command.
func (i *impl) Disconnect(handle uint16, reason uint8) bool {
	return i.withLiveConnection(handle, func() { i.handleDisconnect(handle, reason) })
}

func (i *impl) handleDisconnect(handle uint16, reason uint8) {
	i.hciLayer.EnqueueCommandWithStatus(&cmd.Disconnect{ConnectionHandle: handle, Reason: reason},
		func(evt.CommandStatus) {}, i.handler)
}

// RegisterCallbacks installs the Classic management sink for a handle.
func (i *impl) RegisterCallbacks(handle uint16, callbacks ConnectionManagementCallbacks, h *hci.Handler) {
	i.handler.Post(func() {
		conn := i.lookup(handle)
		if conn == nil {
			logger.Warnf("register callbacks on unknown handle 0x%03x", handle)
			return
		}
		conn.cmCallbacks = callbacks
		conn.cmHandler = h
	})
}

// UnregisterCallbacks removes the management sink.
func (i *impl) UnregisterCallbacks(handle uint16) {
	i.handler.Post(func() {
		conn := i.lookup(handle)
		if conn == nil {
			return
		}
		conn.cmCallbacks = nil
		conn.cmHandler = nil
	})
}

// RegisterLeCallbacks installs the LE management sink for a handle.
func (i *impl) RegisterLeCallbacks(handle uint16, callbacks LeConnectionManagementCallbacks, h *hci.Handler) {
	i.handler.Post(func() {
		conn := i.lookup(handle)
		if conn == nil {
			logger.Warnf("register le callbacks on unknown handle 0x%03x", handle)
			return
		}
		conn.leCallbacks = callbacks
		conn.leHandler = h
	})
}

// RegisterDisconnectCallback installs the one-shot disconnect callback.
// Registering after the link already dropped fires it immediately on h.
func (i *impl) RegisterDisconnectCallback(handle uint16, onDisconnect func(hci.ErrCommand), h *hci.Handler) {
	i.handler.Post(func() {
		conn := i.lookup(handle)
		if conn == nil {
			logger.Warnf("register disconnect callback on unknown handle 0x%03x", handle)
			return
		}
		conn.onDisconnect = onDisconnect
		conn.disconnectHandler = h
		if conn.isDisconnected {
			conn.callDisconnectCallback()
		}
	})
}

// LeConnectionUpdate issues a connection parameter update. At most one
// may be pending per handle; parameters outside the mandatory ranges are
// rejected without HCI traffic [Vol 2, Part E, 7.8.18].
func (i *impl) LeConnectionUpdate(handle, connIntervalMin, connIntervalMax, connLatency,
	supervisionTimeout, minCeLength, maxCeLength uint16,
	doneCallback func(hci.ErrCommand), h *hci.Handler) bool {

	if connIntervalMin < 0x0006 || connIntervalMin > 0x0C80 ||
		connIntervalMax < 0x0006 || connIntervalMax > 0x0C80 ||
		connLatency > 0x01F3 ||
		supervisionTimeout < 0x000A || supervisionTimeout > 0x0C80 {
		logger.Error("invalid le connection update parameter")
		return false
	}

	i.muConns.Lock()
	conn, ok := i.connections[handle]
	if !ok {
		i.muConns.Unlock()
		logger.Warnf("le connection update on unknown handle 0x%03x", handle)
		return false
	}
	if conn.isDisconnected {
		i.muConns.Unlock()
		logger.Info("already disconnected", "handle", handle)
		return false
	}
	if conn.onConnectionUpdate != nil {
		i.muConns.Unlock()
		logger.Info("there is another pending connection update", "handle", handle)
		return false
	}
	conn.onConnectionUpdate = doneCallback
	conn.connectionUpdateHandler = h
	i.muConns.Unlock()

	i.handler.Post(func() {
		i.handleLeConnectionUpdate(handle, connIntervalMin, connIntervalMax, connLatency,
			supervisionTimeout, minCeLength, maxCeLength)
	})
	return true
}

func (i *impl) handleLeConnectionUpdate(handle, connIntervalMin, connIntervalMax, connLatency,
	supervisionTimeout, minCeLength, maxCeLength uint16) {
	packet := &cmd.LEConnectionUpdate{
		ConnectionHandle:   handle,
		ConnIntervalMin:    connIntervalMin,
		ConnIntervalMax:    connIntervalMax,
		ConnLatency:        connLatency,
		SupervisionTimeout: supervisionTimeout,
		MinimumCELength:    minCeLength,
		MaximumCELength:    maxCeLength,
	}
	i.hciLayer.EnqueueCommandWithStatus(packet,
		i.checkCommandStatus(packet.OpCode(), "le connection update"), i.handler)
}

// Finish releases a handle after its disconnect callback has fired. The
// connection must already be disconnected.
func (i *impl) Finish(handle uint16) {
	i.muConns.Lock()
	conn, ok := i.connections[handle]
	disconnected := ok && conn.isDisconnected
	i.muConns.Unlock()
	if !ok {
		logger.Warnf("finish on unknown handle 0x%03x", handle)
		return
	}
	if !disconnected {
		logger.Errorf("finish must be invoked after disconnection (handle 0x%03x)", handle)
		return
	}

	sched := i.scheduler
	i.hciLayer.HciHandler().Post(func() { sched.Unregister(handle) })
	i.handler.Post(func() { i.cleanup(handle) })
}

func (i *impl) cleanup(handle uint16) {
	i.muConns.Lock()
	conn, ok := i.connections[handle]
	if ok {
		delete(i.connections, handle)
	}
	i.muConns.Unlock()
	if ok {
		conn.teardown()
	}
}
