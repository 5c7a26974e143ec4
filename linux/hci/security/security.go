// Package security exposes the listener surface of the security module:
// encryption state changes from the controller and bond lifecycle
// notifications. Pairing itself lives elsewhere.
package security

import (
	"sync"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

var logger = aclmgr.GetLogger()

// CallbackListener receives security events on the handler it registered
// with.
type CallbackListener interface {
	OnDeviceBonded(device aclmgr.AddrWithType)
	OnDeviceUnbonded(device aclmgr.AddrWithType)
	OnDeviceBondFailed(device aclmgr.AddrWithType)
	OnEncryptionStateChanged(view evt.EncryptionChange)
}

type listenerEntry struct {
	listener CallbackListener
	handler  *hci.Handler
}

// Module owns the encryption change event registration and fans it out
// to listeners.
type Module struct {
	manager *Manager
}

func NewModule(hl hci.HciLayer, h *hci.Handler) *Module {
	m := &Module{manager: &Manager{}}
	hl.RegisterEventHandler(evt.EncryptionChangeCode, m.manager.onEncryptionChange, h)
	return m
}

func (m *Module) GetSecurityManager() *Manager {
	return m.manager
}

// Manager is the registration surface handed to other modules.
type Manager struct {
	mu        sync.Mutex
	listeners []listenerEntry
}

// RegisterCallbackListener adds a listener; events are posted on handler.
func (m *Manager) RegisterCallbackListener(l CallbackListener, handler *hci.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.listeners {
		if e.listener == l {
			logger.Warn("security listener registered twice")
			return
		}
	}
	m.listeners = append(m.listeners, listenerEntry{listener: l, handler: handler})
}

// UnregisterCallbackListener removes a listener.
func (m *Manager) UnregisterCallbackListener(l CallbackListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for n, e := range m.listeners {
		if e.listener == l {
			m.listeners = append(m.listeners[:n], m.listeners[n+1:]...)
			return
		}
	}
}

func (m *Manager) onEncryptionChange(b []byte) {
	view := evt.EncryptionChange(b)
	if !view.Valid() {
		logger.Error("received encryption change with invalid packet")
		return
	}
	m.mu.Lock()
	listeners := append([]listenerEntry(nil), m.listeners...)
	m.mu.Unlock()
	for _, e := range listeners {
		l := e.listener
		e.handler.Post(func() { l.OnEncryptionStateChanged(view) })
	}
}

// NotifyDeviceBonded fans a bond event out to listeners.
func (m *Manager) NotifyDeviceBonded(device aclmgr.AddrWithType) {
	m.notify(func(l CallbackListener) { l.OnDeviceBonded(device) })
}

// NotifyDeviceUnbonded fans an unbond event out to listeners.
func (m *Manager) NotifyDeviceUnbonded(device aclmgr.AddrWithType) {
	m.notify(func(l CallbackListener) { l.OnDeviceUnbonded(device) })
}

// NotifyDeviceBondFailed fans a bond failure out to listeners.
func (m *Manager) NotifyDeviceBondFailed(device aclmgr.AddrWithType) {
	m.notify(func(l CallbackListener) { l.OnDeviceBondFailed(device) })
}

func (m *Manager) notify(f func(CallbackListener)) {
	m.mu.Lock()
	listeners := append([]listenerEntry(nil), m.listeners...)
	m.mu.Unlock()
	for _, e := range listeners {
		l := e.listener
		e.handler.Post(func() { f(l) })
	}
}
