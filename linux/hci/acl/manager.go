package acl

import (
	"sync"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
	"github.com/rigado/aclmgr/linux/hci/evt"
	"github.com/rigado/aclmgr/linux/hci/security"
)

var logger = aclmgr.GetLogger()

// Manager owns the lifecycle of ACL links for both Classic and LE
// transports: connection state, ingress routing and reassembly, outbound
// scheduling, and command completion dispatch.
type Manager struct {
	handler *hci.Handler
	impl    *impl
}

type pendingConnection struct {
	addr   aclmgr.Addr
	packet *cmd.CreateConnection
}

type impl struct {
	hciLayer   hci.HciLayer
	controller hci.Controller
	handler    *hci.Handler

	scheduler *RoundRobinScheduler
	hciEnd    *hci.QueueEnd

	muConns     sync.Mutex
	connections map[uint16]*aclConnection

	connecting   map[aclmgr.Addr]bool
	connectingLe map[aclmgr.AddrWithType]bool

	clientCallbacks ConnectionCallbacks
	clientHandler   *hci.Handler

	leClientCallbacks LeConnectionCallbacks
	leClientHandler   *hci.Handler

	shouldAcceptConnection AcceptPredicate
	addressPolicy          LeAddressPolicy

	// Classic Create Connection is one-at-a-time across the stack; the
	// rest wait here in FIFO order.
	pendingOutgoingConnections []pendingConnection

	defaultLinkPolicySettings uint16

	securityManager *security.Manager
}

// NewManager builds a manager over the given transport and capability
// layers. Call Start before use and Stop when done.
func NewManager(hl hci.HciLayer, ctrl hci.Controller) *Manager {
	h := hci.NewHandler()
	m := &Manager{
		handler: h,
		impl: &impl{
			hciLayer:               hl,
			controller:             ctrl,
			handler:                h,
			connections:            make(map[uint16]*aclConnection),
			connecting:             make(map[aclmgr.Addr]bool),
			connectingLe:           make(map[aclmgr.AddrWithType]bool),
			shouldAcceptConnection: func(aclmgr.Addr, [3]byte) bool { return true },
			addressPolicy:          NewStaticRandomAddressPolicy(),
		},
	}
	return m
}

// Start registers for the events this manager handles and begins
// draining the transport's ACL queue.
func (m *Manager) Start() {
	m.handler.Post(func() { m.impl.start() })
	m.handler.Sync()
}

// Stop unregisters event handlers and drops all connection state.
func (m *Manager) Stop() {
	m.handler.Post(func() { m.impl.stop() })
	m.handler.Sync()
	m.handler.Close()
}

// RegisterCallbacks installs the Classic connection callbacks, invoked
// on handler.
func (m *Manager) RegisterCallbacks(cb ConnectionCallbacks, h *hci.Handler) {
	m.handler.Post(func() {
		m.impl.clientCallbacks = cb
		m.impl.clientHandler = h
	})
}

// RegisterLeCallbacks installs the LE connection callbacks, invoked on
// handler.
func (m *Manager) RegisterLeCallbacks(cb LeConnectionCallbacks, h *hci.Handler) {
	m.handler.Post(func() {
		m.impl.leClientCallbacks = cb
		m.impl.leClientHandler = h
	})
}

// SetAcceptPredicate overrides the incoming Classic connection policy.
func (m *Manager) SetAcceptPredicate(p AcceptPredicate) {
	m.handler.Post(func() {
		if p != nil {
			m.impl.shouldAcceptConnection = p
		}
	})
}

// SetLeAddressPolicy overrides the LE random address source used before
// extended create connection.
func (m *Manager) SetLeAddressPolicy(p LeAddressPolicy) {
	m.handler.Post(func() {
		if p != nil {
			m.impl.addressPolicy = p
		}
	})
}

// CreateConnection initiates an outbound Classic connection.
func (m *Manager) CreateConnection(addr aclmgr.Addr) {
	m.handler.Post(func() { m.impl.createConnection(addr) })
}

// CreateLeConnection initiates an outbound LE connection.
func (m *Manager) CreateLeConnection(addr aclmgr.AddrWithType) {
	m.handler.Post(func() { m.impl.createLeConnection(addr) })
}

// CancelConnect cancels an outstanding outbound Classic connection.
func (m *Manager) CancelConnect(addr aclmgr.Addr) {
	m.handler.Post(func() { m.impl.cancelConnect(addr) })
}

// MasterLinkKey switches between the semi-permanent and temporary link keys.
func (m *Manager) MasterLinkKey(keyFlag uint8) {
	m.handler.Post(func() { m.impl.masterLinkKey(keyFlag) })
}

// SwitchRole requests a role switch with the remote device.
func (m *Manager) SwitchRole(addr aclmgr.Addr, role uint8) {
	m.handler.Post(func() { m.impl.switchRole(addr, role) })
}

// ReadDefaultLinkPolicySettings returns the settings cached at Start.
func (m *Manager) ReadDefaultLinkPolicySettings() uint16 {
	var v uint16
	m.handler.Post(func() { v = m.impl.defaultLinkPolicySettings })
	m.handler.Sync()
	return v
}

// WriteDefaultLinkPolicySettings writes through to the controller.
func (m *Manager) WriteDefaultLinkPolicySettings(settings uint16) {
	m.handler.Post(func() {
		m.impl.defaultLinkPolicySettings = settings
		m.impl.writeDefaultLinkPolicySettings(settings)
	})
}

// SetSecurityModule registers this manager with the security module's
// callback listener surface.
func (m *Manager) SetSecurityModule(sm *security.Module) {
	m.handler.Post(func() {
		m.impl.securityManager = sm.GetSecurityManager()
		m.impl.securityManager.RegisterCallbackListener(m.impl, m.handler)
	})
}

func (i *impl) start() {
	i.scheduler = NewRoundRobinScheduler(i.hciLayer.HciHandler(), i.controller, i.hciLayer.AclQueueEnd())

	i.hciEnd = i.hciLayer.AclQueueEnd()
	i.hciEnd.RegisterDequeue(i.handler, i.dequeueAndRouteAclPacket)

	i.hciLayer.RegisterEventHandler(evt.ConnectionCompleteCode, i.onConnectionComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.DisconnectionCompleteCode, i.onDisconnectionComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ConnectionRequestCode, i.onIncomingConnection, i.handler)
	i.hciLayer.RegisterLeEventHandler(evt.LEConnectionCompleteSubCode, i.onLeConnectionComplete, i.handler)
	i.hciLayer.RegisterLeEventHandler(evt.LEEnhancedConnectionCompleteSubCode, i.onLeEnhancedConnectionComplete, i.handler)
	i.hciLayer.RegisterLeEventHandler(evt.LEConnectionUpdateCompleteSubCode, i.onLeConnectionUpdateComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ConnectionPacketTypeChangedCode, i.onConnectionPacketTypeChanged, i.handler)
	i.hciLayer.RegisterEventHandler(evt.AuthenticationCompleteCode, i.onAuthenticationComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.MasterLinkKeyCompleteCode, i.onMasterLinkKeyComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ChangeConnectionLinkKeyCompleteCode, i.onChangeConnectionLinkKeyComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ReadClockOffsetCompleteCode, i.onReadClockOffsetComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ModeChangeCode, i.onModeChange, i.handler)
	i.hciLayer.RegisterEventHandler(evt.QosSetupCompleteCode, i.onQosSetupComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.RoleChangeCode, i.onRoleChange, i.handler)
	i.hciLayer.RegisterEventHandler(evt.FlowSpecificationCompleteCode, i.onFlowSpecificationComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.FlushOccurredCode, i.onFlushOccurred, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ReadRemoteSupportedFeaturesCompleteCode, i.onReadRemoteSupportedFeaturesComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ReadRemoteExtendedFeaturesCompleteCode, i.onReadRemoteExtendedFeaturesComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.ReadRemoteVersionInformationCompleteCode, i.onReadRemoteVersionInformationComplete, i.handler)
	i.hciLayer.RegisterEventHandler(evt.LinkSupervisionTimeoutChangedCode, i.onLinkSupervisionTimeoutChanged, i.handler)

	i.readDefaultLinkPolicySettings()
}

func (i *impl) stop() {
	i.hciLayer.UnregisterEventHandler(evt.ConnectionCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.DisconnectionCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ConnectionRequestCode)
	i.hciLayer.UnregisterLeEventHandler(evt.LEConnectionCompleteSubCode)
	i.hciLayer.UnregisterLeEventHandler(evt.LEEnhancedConnectionCompleteSubCode)
	i.hciLayer.UnregisterLeEventHandler(evt.LEConnectionUpdateCompleteSubCode)
	i.hciLayer.UnregisterEventHandler(evt.ConnectionPacketTypeChangedCode)
	i.hciLayer.UnregisterEventHandler(evt.AuthenticationCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.MasterLinkKeyCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ChangeConnectionLinkKeyCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ReadClockOffsetCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ModeChangeCode)
	i.hciLayer.UnregisterEventHandler(evt.QosSetupCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.RoleChangeCode)
	i.hciLayer.UnregisterEventHandler(evt.FlowSpecificationCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.FlushOccurredCode)
	i.hciLayer.UnregisterEventHandler(evt.ReadRemoteSupportedFeaturesCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ReadRemoteExtendedFeaturesCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.ReadRemoteVersionInformationCompleteCode)
	i.hciLayer.UnregisterEventHandler(evt.LinkSupervisionTimeoutChangedCode)

	if i.hciEnd != nil {
		i.hciEnd.UnregisterDequeue()
	}
	if i.scheduler != nil {
		sched := i.scheduler
		i.hciLayer.HciHandler().Post(func() { sched.Shutdown() })
	}

	i.muConns.Lock()
	for _, c := range i.connections {
		c.teardown()
	}
	i.connections = make(map[uint16]*aclConnection)
	i.muConns.Unlock()
}

// lookup returns the connection record, or nil for an unknown handle.
func (i *impl) lookup(handle uint16) *aclConnection {
	i.muConns.Lock()
	defer i.muConns.Unlock()
	return i.connections[handle]
}

func (i *impl) isClassicLinkAlreadyConnected(addr aclmgr.Addr) bool {
	i.muConns.Lock()
	defer i.muConns.Unlock()
	for _, c := range i.connections {
		if c.kind == linkClassic && c.peer.Addr == addr {
			return true
		}
	}
	return false
}
