package security

import (
	"sync"
	"testing"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

type fakeHciLayer struct {
	mu      sync.Mutex
	handler *hci.Handler
	evth    map[int]hci.EventHandler
	evtHdlr map[int]*hci.Handler
}

func newFakeHciLayer() *fakeHciLayer {
	return &fakeHciLayer{
		handler: hci.NewHandler(),
		evth:    make(map[int]hci.EventHandler),
		evtHdlr: make(map[int]*hci.Handler),
	}
}

func (f *fakeHciLayer) EnqueueCommand(hci.Command, func(evt.CommandComplete), *hci.Handler) {}
func (f *fakeHciLayer) EnqueueCommandWithStatus(hci.Command, func(evt.CommandStatus), *hci.Handler) {
}

func (f *fakeHciLayer) RegisterEventHandler(code int, cb hci.EventHandler, h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evth[code] = cb
	f.evtHdlr[code] = h
}

func (f *fakeHciLayer) UnregisterEventHandler(code int)                                 { delete(f.evth, code) }
func (f *fakeHciLayer) RegisterLeEventHandler(int, hci.EventHandler, *hci.Handler)      {}
func (f *fakeHciLayer) UnregisterLeEventHandler(int)                                    {}
func (f *fakeHciLayer) AclQueueEnd() *hci.QueueEnd                                      { return nil }
func (f *fakeHciLayer) HciHandler() *hci.Handler                                        { return f.handler }

func (f *fakeHciLayer) sendEvent(code int, payload []byte) {
	f.mu.Lock()
	cb, h := f.evth[code], f.evtHdlr[code]
	f.mu.Unlock()
	if cb != nil {
		h.Post(func() { cb(payload) })
	}
}

type recordingListener struct {
	mu         sync.Mutex
	bonded     []aclmgr.AddrWithType
	encChanges []evt.EncryptionChange
}

func (l *recordingListener) OnDeviceBonded(d aclmgr.AddrWithType) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bonded = append(l.bonded, d)
}
func (l *recordingListener) OnDeviceUnbonded(aclmgr.AddrWithType)   {}
func (l *recordingListener) OnDeviceBondFailed(aclmgr.AddrWithType) {}
func (l *recordingListener) OnEncryptionStateChanged(v evt.EncryptionChange) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.encChanges = append(l.encChanges, v)
}

func TestEncryptionChangeFanout(t *testing.T) {
	f := newFakeHciLayer()
	defer f.handler.Close()
	m := NewModule(f, f.handler)

	h := hci.NewHandler()
	defer h.Close()
	l := &recordingListener{}
	m.GetSecurityManager().RegisterCallbackListener(l, h)

	f.sendEvent(evt.EncryptionChangeCode, []byte{0x00, 0x40, 0x00, 0x01})
	f.handler.Sync()
	h.Sync()

	l.mu.Lock()
	if len(l.encChanges) != 1 {
		l.mu.Unlock()
		t.Fatalf("want 1 encryption change, got %d", len(l.encChanges))
	}
	if l.encChanges[0].ConnectionHandle() != 0x0040 || l.encChanges[0].EncryptionEnabled() != 1 {
		l.mu.Unlock()
		t.Fatalf("wrong view: % x", []byte(l.encChanges[0]))
	}
	l.mu.Unlock()

	// invalid packets are dropped before fan-out
	f.sendEvent(evt.EncryptionChangeCode, []byte{0x00})
	f.handler.Sync()
	h.Sync()

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.encChanges) != 1 {
		t.Fatal("invalid packet reached listeners")
	}
}

func TestBondNotifications(t *testing.T) {
	f := newFakeHciLayer()
	defer f.handler.Close()
	m := NewModule(f, f.handler)

	h := hci.NewHandler()
	defer h.Close()
	l := &recordingListener{}
	m.GetSecurityManager().RegisterCallbackListener(l, h)

	addr, _ := aclmgr.NewAddr("11:22:33:44:55:66")
	device := aclmgr.AddrWithType{Addr: addr, Type: aclmgr.PublicDevice}
	m.GetSecurityManager().NotifyDeviceBonded(device)
	h.Sync()

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.bonded) != 1 || l.bonded[0] != device {
		t.Fatalf("want bonded %s, got %+v", device, l.bonded)
	}
}
