package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

// checkCommandComplete is the generic validator for completes nobody
// parses: verify the view, match the opcode, log a textual error on a
// non-success status.
func (i *impl) checkCommandComplete(opCode int, name string) func(evt.CommandComplete) {
	return func(e evt.CommandComplete) {
		if !e.Valid() {
			logger.Errorf("received command complete with invalid packet, %s", name)
			return
		}
		if int(e.CommandOpcode()) != opCode {
			logger.Errorf("received command complete with unexpected opcode 0x%04x, want %s", e.CommandOpcode(), name)
			return
		}
		rp := e.ReturnParameters()
		if len(rp) > 0 && rp[0] != 0 {
			logger.Errorf("received command complete with error code %s, %s", hci.ErrCommand(rp[0]).Error(), name)
		}
	}
}

// checkCommandStatus is the Command Status flavor of the same validator.
func (i *impl) checkCommandStatus(opCode int, name string) func(evt.CommandStatus) {
	return func(e evt.CommandStatus) {
		if !e.Valid() {
			logger.Errorf("received command status with invalid packet, %s", name)
			return
		}
		if int(e.CommandOpcode()) != opCode {
			logger.Errorf("received command status with unexpected opcode 0x%04x, want %s", e.CommandOpcode(), name)
			return
		}
		if e.Status() != 0 {
			logger.Errorf("received command status with error code %s, %s", hci.ErrCommand(e.Status()).Error(), name)
		}
	}
}

// postToManagement parses the shared (status, handle) prefix of a
// command complete and hands the connection's management sink to f.
func (i *impl) postToManagement(e evt.CommandComplete, name string, parse func() (uint16, bool),
	post func(cb ConnectionManagementCallbacks)) {
	if !e.Valid() {
		logger.Errorf("received %s with invalid packet", name)
		return
	}
	handle, ok := parse()
	if !ok {
		return
	}
	conn := i.lookup(handle)
	if conn == nil {
		logger.Warnf("%s for unknown handle 0x%03x", name, handle)
		return
	}
	if conn.cmCallbacks == nil {
		return
	}
	cb := conn.cmCallbacks
	conn.cmHandler.Post(func() { post(cb) })
}

func (i *impl) rpStatusOk(status uint8, name string) bool {
	if status != 0 {
		logger.Errorf("received %s with error code %s", name, hci.ErrCommand(status).Error())
		return false
	}
	return true
}

// Per-connection Classic operations. Each checks the gone-handle
// contract synchronously, then issues the command from the manager
// handler.

func (i *impl) ChangeConnectionPacketType(handle uint16, packetType uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ChangeConnectionPacketType{ConnectionHandle: handle, PacketType: packetType}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "change connection packet type"), i.handler)
	})
}

func (i *impl) AuthenticationRequested(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.AuthenticationRequested{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "authentication requested"), i.handler)
	})
}

func (i *impl) SetConnectionEncryption(handle uint16, enable uint8) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.SetConnectionEncryption{ConnectionHandle: handle, EncryptionEnable: enable}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "set connection encryption"), i.handler)
	})
}

func (i *impl) ChangeConnectionLinkKey(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ChangeConnectionLinkKey{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "change connection link key"), i.handler)
	})
}

func (i *impl) ReadClockOffset(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ReadClockOffset{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "read clock offset"), i.handler)
	})
}

func (i *impl) HoldMode(handle, maxInterval, minInterval uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.HoldMode{ConnectionHandle: handle,
			HoldModeMaxInterval: maxInterval, HoldModeMinInterval: minInterval}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "hold mode"), i.handler)
	})
}

func (i *impl) SniffMode(handle, maxInterval, minInterval, attempt, timeout uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.SniffMode{ConnectionHandle: handle, SniffMaxInterval: maxInterval,
			SniffMinInterval: minInterval, SniffAttempt: attempt, SniffTimeout: timeout}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "sniff mode"), i.handler)
	})
}

func (i *impl) ExitSniffMode(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ExitSniffMode{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "exit sniff mode"), i.handler)
	})
}

func (i *impl) QosSetup(handle uint16, serviceType uint8, tokenRate, peakBandwidth, latency, delayVariation uint32) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.QoSSetup{ConnectionHandle: handle, ServiceType: serviceType,
			TokenRate: tokenRate, PeakBandwidth: peakBandwidth, Latency: latency,
			DelayVariation: delayVariation}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "qos setup"), i.handler)
	})
}

func (i *impl) RoleDiscovery(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.RoleDiscovery{ConnectionHandle: handle},
			i.onRoleDiscoveryComplete, i.handler)
	})
}

func (i *impl) onRoleDiscoveryComplete(e evt.CommandComplete) {
	rp := cmd.RoleDiscoveryRP{}
	i.postToManagement(e, "role discovery complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received role discovery complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "role discovery complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnRoleDiscoveryComplete(rp.CurrentRole)
	})
}

func (i *impl) ReadLinkPolicySettings(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadLinkPolicySettings{ConnectionHandle: handle},
			i.onReadLinkPolicySettingsComplete, i.handler)
	})
}

func (i *impl) onReadLinkPolicySettingsComplete(e evt.CommandComplete) {
	rp := cmd.ReadLinkPolicySettingsRP{}
	i.postToManagement(e, "read link policy settings complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read link policy settings complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read link policy settings complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadLinkPolicySettingsComplete(rp.LinkPolicySettings)
	})
}

func (i *impl) WriteLinkPolicySettings(handle uint16, settings uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.WriteLinkPolicySettings{ConnectionHandle: handle, LinkPolicySettings: settings}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "write link policy settings"), i.handler)
	})
}

func (i *impl) FlowSpecification(handle uint16, flowDirection, serviceType uint8,
	tokenRate, tokenBucketSize, peakBandwidth, accessLatency uint32) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.FlowSpecification{ConnectionHandle: handle, FlowDirection: flowDirection,
			ServiceType: serviceType, TokenRate: tokenRate, TokenBucketSize: tokenBucketSize,
			PeakBandwidth: peakBandwidth, AccessLatency: accessLatency}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "flow specification"), i.handler)
	})
}

func (i *impl) SniffSubrating(handle, maximumLatency, minimumRemoteTimeout, minimumLocalTimeout uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.SniffSubrating{ConnectionHandle: handle, MaximumLatency: maximumLatency,
			MinimumRemoteTimeout: minimumRemoteTimeout, MinimumLocalTimeout: minimumLocalTimeout}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "sniff subrating"), i.handler)
	})
}

func (i *impl) Flush(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.Flush{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "flush"), i.handler)
	})
}

func (i *impl) ReadAutomaticFlushTimeout(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadAutomaticFlushTimeout{ConnectionHandle: handle},
			i.onReadAutomaticFlushTimeoutComplete, i.handler)
	})
}

func (i *impl) onReadAutomaticFlushTimeoutComplete(e evt.CommandComplete) {
	rp := cmd.ReadAutomaticFlushTimeoutRP{}
	i.postToManagement(e, "read automatic flush timeout complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read automatic flush timeout complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read automatic flush timeout complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadAutomaticFlushTimeoutComplete(rp.FlushTimeout)
	})
}

func (i *impl) WriteAutomaticFlushTimeout(handle uint16, flushTimeout uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.WriteAutomaticFlushTimeout{ConnectionHandle: handle, FlushTimeout: flushTimeout}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "write automatic flush timeout"), i.handler)
	})
}

func (i *impl) ReadTransmitPowerLevel(handle uint16, levelType uint8) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadTransmitPowerLevel{ConnectionHandle: handle, Type: levelType},
			i.onReadTransmitPowerLevelComplete, i.handler)
	})
}

func (i *impl) onReadTransmitPowerLevelComplete(e evt.CommandComplete) {
	rp := cmd.ReadTransmitPowerLevelRP{}
	i.postToManagement(e, "read transmit power level complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read transmit power level complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read transmit power level complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadTransmitPowerLevelComplete(rp.TransmitPowerLevel)
	})
}

func (i *impl) ReadLinkSupervisionTimeout(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadLinkSupervisionTimeout{ConnectionHandle: handle},
			i.onReadLinkSupervisionTimeoutComplete, i.handler)
	})
}

func (i *impl) onReadLinkSupervisionTimeoutComplete(e evt.CommandComplete) {
	rp := cmd.ReadLinkSupervisionTimeoutRP{}
	i.postToManagement(e, "read link supervision timeout complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read link supervision timeout complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read link supervision timeout complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadLinkSupervisionTimeoutComplete(rp.LinkSupervisionTimeout)
	})
}

func (i *impl) WriteLinkSupervisionTimeout(handle uint16, timeout uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.WriteLinkSupervisionTimeout{ConnectionHandle: handle, LinkSupervisionTimeout: timeout}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "write link supervision timeout"), i.handler)
	})
}

func (i *impl) ReadFailedContactCounter(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadFailedContactCounter{ConnectionHandle: handle},
			i.onReadFailedContactCounterComplete, i.handler)
	})
}

func (i *impl) onReadFailedContactCounterComplete(e evt.CommandComplete) {
	rp := cmd.ReadFailedContactCounterRP{}
	i.postToManagement(e, "read failed contact counter complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read failed contact counter complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read failed contact counter complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadFailedContactCounterComplete(rp.FailedContactCounter)
	})
}

func (i *impl) ResetFailedContactCounter(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ResetFailedContactCounter{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommand(packet,
			i.checkCommandComplete(packet.OpCode(), "reset failed contact counter"), i.handler)
	})
}

func (i *impl) ReadLinkQuality(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadLinkQuality{ConnectionHandle: handle},
			i.onReadLinkQualityComplete, i.handler)
	})
}

func (i *impl) onReadLinkQualityComplete(e evt.CommandComplete) {
	rp := cmd.ReadLinkQualityRP{}
	i.postToManagement(e, "read link quality complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read link quality complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read link quality complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadLinkQualityComplete(rp.LinkQuality)
	})
}

func (i *impl) ReadAfhChannelMap(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadAFHChannelMap{ConnectionHandle: handle},
			i.onReadAfhChannelMapComplete, i.handler)
	})
}

func (i *impl) onReadAfhChannelMapComplete(e evt.CommandComplete) {
	rp := cmd.ReadAFHChannelMapRP{}
	i.postToManagement(e, "read afh channel map complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read afh channel map complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read afh channel map complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadAfhChannelMapComplete(rp.AFHMode, rp.AFHChannelMap)
	})
}

func (i *impl) ReadRssi(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadRSSI{ConnectionHandle: handle},
			i.onReadRssiComplete, i.handler)
	})
}

func (i *impl) onReadRssiComplete(e evt.CommandComplete) {
	rp := cmd.ReadRSSIRP{}
	i.postToManagement(e, "read rssi complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read rssi complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read rssi complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadRssiComplete(rp.RSSI)
	})
}

func (i *impl) ReadClock(handle uint16, whichClock uint8) bool {
	return i.withLiveConnection(handle, func() {
		i.hciLayer.EnqueueCommand(&cmd.ReadClock{ConnectionHandle: handle, WhichClock: whichClock},
			i.onReadClockComplete, i.handler)
	})
}

func (i *impl) onReadClockComplete(e evt.CommandComplete) {
	rp := cmd.ReadClockRP{}
	i.postToManagement(e, "read clock complete", func() (uint16, bool) {
		if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
			logger.Error("received read clock complete with invalid packet")
			return 0, false
		}
		return rp.ConnectionHandle, i.rpStatusOk(rp.Status, "read clock complete")
	}, func(cb ConnectionManagementCallbacks) {
		cb.OnReadClockComplete(rp.Clock, rp.Accuracy)
	})
}

func (i *impl) ReadRemoteVersionInformation(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ReadRemoteVersionInformation{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "read remote version information"), i.handler)
	})
}

func (i *impl) ReadRemoteSupportedFeatures(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ReadRemoteSupportedFeatures{ConnectionHandle: handle}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "read remote supported features"), i.handler)
	})
}

func (i *impl) ReadRemoteExtendedFeatures(handle uint16) bool {
	return i.withLiveConnection(handle, func() {
		packet := &cmd.ReadRemoteExtendedFeatures{ConnectionHandle: handle, PageNumber: 1}
		i.hciLayer.EnqueueCommandWithStatus(packet,
			i.checkCommandStatus(packet.OpCode(), "read remote extended features"), i.handler)
	})
}

// Manager-level link policy operations.

func (i *impl) masterLinkKey(keyFlag uint8) {
	packet := &cmd.MasterLinkKey{KeyFlag: keyFlag}
	i.hciLayer.EnqueueCommandWithStatus(packet,
		i.checkCommandStatus(packet.OpCode(), "master link key"), i.handler)
}

func (i *impl) switchRole(address aclmgr.Addr, role uint8) {
	packet := &cmd.SwitchRole{BDADDR: address, Role: role}
	i.hciLayer.EnqueueCommandWithStatus(packet,
		i.checkCommandStatus(packet.OpCode(), "switch role"), i.handler)
}

func (i *impl) readDefaultLinkPolicySettings() {
	i.hciLayer.EnqueueCommand(&cmd.ReadDefaultLinkPolicySettings{},
		i.onReadDefaultLinkPolicySettingsComplete, i.handler)
}

func (i *impl) onReadDefaultLinkPolicySettingsComplete(e evt.CommandComplete) {
	if !e.Valid() {
		logger.Error("received read default link policy settings complete with invalid packet")
		return
	}
	rp := cmd.ReadDefaultLinkPolicySettingsRP{}
	if err := rp.Unmarshal(e.ReturnParameters()); err != nil {
		logger.Error("received read default link policy settings complete with invalid packet")
		return
	}
	if !i.rpStatusOk(rp.Status, "read default link policy settings complete") {
		return
	}
	i.defaultLinkPolicySettings = rp.DefaultLinkPolicySettings
}

func (i *impl) writeDefaultLinkPolicySettings(settings uint16) {
	packet := &cmd.WriteDefaultLinkPolicySettings{DefaultLinkPolicySettings: settings}
	i.hciLayer.EnqueueCommand(packet,
		i.checkCommandComplete(packet.OpCode(), "write default link policy settings"), i.handler)
}
