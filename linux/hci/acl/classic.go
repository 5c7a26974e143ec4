package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
)

// ClassicConn is the per-connection proxy handed to the upper layer on
// OnConnectSuccess. It holds only the handle and a reference back to the
// manager; every method is a thin forward that fails gracefully once the
// handle is gone. A proxy must not be used after Finish.
type ClassicConn struct {
	manager *impl
	handle  uint16
	addr    aclmgr.Addr
}

// Handle returns the controller-assigned connection handle.
func (c *ClassicConn) Handle() uint16 { return c.handle }

// Addr returns the peer device address.
func (c *ClassicConn) Addr() aclmgr.Addr { return c.addr }

// GetAclQueueEnd returns the upper end of the connection's data queues.
// L2CAP reads reassembled inbound PDUs and writes outbound PDUs on it.
func (c *ClassicConn) GetAclQueueEnd() *hci.QueueEnd {
	conn := c.manager.lookup(c.handle)
	if conn == nil {
		return nil
	}
	return conn.queue.UpEnd()
}

func (c *ClassicConn) RegisterCallbacks(callbacks ConnectionManagementCallbacks, h *hci.Handler) {
	c.manager.RegisterCallbacks(c.handle, callbacks, h)
}

func (c *ClassicConn) UnregisterCallbacks() {
	c.manager.UnregisterCallbacks(c.handle)
}

func (c *ClassicConn) RegisterDisconnectCallback(onDisconnect func(hci.ErrCommand), h *hci.Handler) {
	c.manager.RegisterDisconnectCallback(c.handle, onDisconnect, h)
}

func (c *ClassicConn) Disconnect(reason uint8) bool {
	return c.manager.Disconnect(c.handle, reason)
}

func (c *ClassicConn) ChangeConnectionPacketType(packetType uint16) bool {
	return c.manager.ChangeConnectionPacketType(c.handle, packetType)
}

func (c *ClassicConn) AuthenticationRequested() bool {
	return c.manager.AuthenticationRequested(c.handle)
}

func (c *ClassicConn) SetConnectionEncryption(enable uint8) bool {
	return c.manager.SetConnectionEncryption(c.handle, enable)
}

func (c *ClassicConn) ChangeConnectionLinkKey() bool {
	return c.manager.ChangeConnectionLinkKey(c.handle)
}

func (c *ClassicConn) ReadClockOffset() bool {
	return c.manager.ReadClockOffset(c.handle)
}

func (c *ClassicConn) HoldMode(maxInterval, minInterval uint16) bool {
	return c.manager.HoldMode(c.handle, maxInterval, minInterval)
}

func (c *ClassicConn) SniffMode(maxInterval, minInterval, attempt, timeout uint16) bool {
	return c.manager.SniffMode(c.handle, maxInterval, minInterval, attempt, timeout)
}

func (c *ClassicConn) ExitSniffMode() bool {
	return c.manager.ExitSniffMode(c.handle)
}

func (c *ClassicConn) QosSetup(serviceType uint8, tokenRate, peakBandwidth, latency, delayVariation uint32) bool {
	return c.manager.QosSetup(c.handle, serviceType, tokenRate, peakBandwidth, latency, delayVariation)
}

func (c *ClassicConn) RoleDiscovery() bool {
	return c.manager.RoleDiscovery(c.handle)
}

func (c *ClassicConn) ReadLinkPolicySettings() bool {
	return c.manager.ReadLinkPolicySettings(c.handle)
}

func (c *ClassicConn) WriteLinkPolicySettings(settings uint16) bool {
	return c.manager.WriteLinkPolicySettings(c.handle, settings)
}

func (c *ClassicConn) FlowSpecification(flowDirection, serviceType uint8,
	tokenRate, tokenBucketSize, peakBandwidth, accessLatency uint32) bool {
	return c.manager.FlowSpecification(c.handle, flowDirection, serviceType,
		tokenRate, tokenBucketSize, peakBandwidth, accessLatency)
}

func (c *ClassicConn) SniffSubrating(maximumLatency, minimumRemoteTimeout, minimumLocalTimeout uint16) bool {
	return c.manager.SniffSubrating(c.handle, maximumLatency, minimumRemoteTimeout, minimumLocalTimeout)
}

func (c *ClassicConn) Flush() bool {
	return c.manager.Flush(c.handle)
}

func (c *ClassicConn) ReadAutomaticFlushTimeout() bool {
	return c.manager.ReadAutomaticFlushTimeout(c.handle)
}

func (c *ClassicConn) WriteAutomaticFlushTimeout(flushTimeout uint16) bool {
	return c.manager.WriteAutomaticFlushTimeout(c.handle, flushTimeout)
}

func (c *ClassicConn) ReadTransmitPowerLevel(levelType uint8) bool {
	return c.manager.ReadTransmitPowerLevel(c.handle, levelType)
}

func (c *ClassicConn) ReadLinkSupervisionTimeout() bool {
	return c.manager.ReadLinkSupervisionTimeout(c.handle)
}

func (c *ClassicConn) WriteLinkSupervisionTimeout(timeout uint16) bool {
	return c.manager.WriteLinkSupervisionTimeout(c.handle, timeout)
}

func (c *ClassicConn) ReadFailedContactCounter() bool {
	return c.manager.ReadFailedContactCounter(c.handle)
}

func (c *ClassicConn) ResetFailedContactCounter() bool {
	return c.manager.ResetFailedContactCounter(c.handle)
}

func (c *ClassicConn) ReadLinkQuality() bool {
	return c.manager.ReadLinkQuality(c.handle)
}

func (c *ClassicConn) ReadAfhChannelMap() bool {
	return c.manager.ReadAfhChannelMap(c.handle)
}

func (c *ClassicConn) ReadRssi() bool {
	return c.manager.ReadRssi(c.handle)
}

func (c *ClassicConn) ReadRemoteVersionInformation() bool {
	return c.manager.ReadRemoteVersionInformation(c.handle)
}

func (c *ClassicConn) ReadRemoteSupportedFeatures() bool {
	return c.manager.ReadRemoteSupportedFeatures(c.handle)
}

func (c *ClassicConn) ReadRemoteExtendedFeatures() bool {
	return c.manager.ReadRemoteExtendedFeatures(c.handle)
}

func (c *ClassicConn) ReadClock(whichClock uint8) bool {
	return c.manager.ReadClock(c.handle, whichClock)
}

// Finish releases the handle. Valid only after the disconnect callback
// has fired.
func (c *ClassicConn) Finish() {
	c.manager.Finish(c.handle)
}
