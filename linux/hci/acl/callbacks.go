package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
)

// ConnectionCallbacks is the upper layer's sink for Classic connection
// outcomes. Posted on the handler registered with RegisterCallbacks.
type ConnectionCallbacks interface {
	OnConnectSuccess(c *ClassicConn)
	OnConnectFail(addr aclmgr.Addr, reason hci.ErrCommand)
}

// LeConnectionCallbacks is the upper layer's sink for LE connection
// outcomes. The reported address is the peer's resolvable private
// address when the controller supplied one.
type LeConnectionCallbacks interface {
	OnLeConnectSuccess(addr aclmgr.AddrWithType, c *LeConn)
	OnLeConnectFail(addr aclmgr.AddrWithType, reason hci.ErrCommand)
}

// ConnectionManagementCallbacks receives per-connection Classic events
// and command results. All methods are invoked on the handler supplied
// at registration.
type ConnectionManagementCallbacks interface {
	OnConnectionPacketTypeChanged(packetType uint16)
	OnAuthenticationComplete()
	OnEncryptionChange(enabled uint8)
	OnChangeConnectionLinkKeyComplete()
	OnMasterLinkKeyComplete(keyFlag uint8)
	OnReadClockOffsetComplete(clockOffset uint16)
	OnModeChange(currentMode uint8, interval uint16)
	OnQosSetupComplete(serviceType uint8, tokenRate, peakBandwidth, latency, delayVariation uint32)
	OnRoleChange(newRole uint8)
	OnFlowSpecificationComplete(flowDirection, serviceType uint8, tokenRate, tokenBucketSize, peakBandwidth, accessLatency uint32)
	OnFlushOccurred()
	OnReadRemoteSupportedFeaturesComplete(features uint64)
	OnReadRemoteExtendedFeaturesComplete(pageNumber, maxPageNumber uint8, features uint64)
	OnReadRemoteVersionInformationComplete(version uint8, manufacturer, subversion uint16)
	OnLinkSupervisionTimeoutChanged(timeout uint16)
	OnRoleDiscoveryComplete(role uint8)
	OnReadLinkPolicySettingsComplete(settings uint16)
	OnReadAutomaticFlushTimeoutComplete(timeout uint16)
	OnReadTransmitPowerLevelComplete(level int8)
	OnReadLinkSupervisionTimeoutComplete(timeout uint16)
	OnReadFailedContactCounterComplete(counter uint16)
	OnReadLinkQualityComplete(quality uint8)
	OnReadAfhChannelMapComplete(mode uint8, channelMap [10]byte)
	OnReadRssiComplete(rssi int8)
	OnReadClockComplete(clock uint32, accuracy uint16)
}

// LeConnectionManagementCallbacks receives per-connection LE events.
type LeConnectionManagementCallbacks interface {
	OnConnectionUpdate(connInterval, connLatency, supervisionTimeout uint16)
}

// AcceptPredicate decides whether an incoming Classic connection request
// from addr with the given class of device is accepted. The default
// accepts everything.
type AcceptPredicate func(addr aclmgr.Addr, classOfDevice [3]byte) bool
