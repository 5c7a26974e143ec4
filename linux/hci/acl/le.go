package acl

import (
	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
)

// LeConn is the per-connection proxy for LE links.
type LeConn struct {
	manager *impl
	handle  uint16
	addr    aclmgr.AddrWithType
}

// Handle returns the controller-assigned connection handle.
func (c *LeConn) Handle() uint16 { return c.handle }

// Addr returns the peer address the connection was reported with: the
// resolvable private address for privacy-enabled links, the identity
// address otherwise.
func (c *LeConn) Addr() aclmgr.AddrWithType { return c.addr }

// GetAclQueueEnd returns the upper end of the connection's data queues.
func (c *LeConn) GetAclQueueEnd() *hci.QueueEnd {
	conn := c.manager.lookup(c.handle)
	if conn == nil {
		return nil
	}
	return conn.queue.UpEnd()
}

func (c *LeConn) RegisterCallbacks(callbacks LeConnectionManagementCallbacks, h *hci.Handler) {
	c.manager.RegisterLeCallbacks(c.handle, callbacks, h)
}

func (c *LeConn) RegisterDisconnectCallback(onDisconnect func(hci.ErrCommand), h *hci.Handler) {
	c.manager.RegisterDisconnectCallback(c.handle, onDisconnect, h)
}

func (c *LeConn) Disconnect(reason uint8) bool {
	return c.manager.Disconnect(c.handle, reason)
}

// LeConnectionUpdate requests new connection parameters. doneCallback
// fires on h when the controller reports the update complete. Returns
// false on invalid parameters, a gone handle, or a still-pending update.
func (c *LeConn) LeConnectionUpdate(connIntervalMin, connIntervalMax, connLatency,
	supervisionTimeout, minCeLength, maxCeLength uint16,
	doneCallback func(hci.ErrCommand), h *hci.Handler) bool {
	return c.manager.LeConnectionUpdate(c.handle, connIntervalMin, connIntervalMax, connLatency,
		supervisionTimeout, minCeLength, maxCeLength, doneCallback, h)
}

// Finish releases the handle. Valid only after the disconnect callback
// has fired.
func (c *LeConn) Finish() {
	c.manager.Finish(c.handle)
}
