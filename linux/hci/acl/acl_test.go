package acl

import (
	"sync"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

// fakeHciLayer satisfies hci.HciLayer and records everything the manager
// issues, so tests can inspect commands and inject events.
type fakeHciLayer struct {
	mu sync.Mutex

	hciHandler *hci.Handler
	queue      *hci.Queue

	evth map[int]*fakeEventEntry
	subh map[int]*fakeEventEntry

	issued []issuedCommand
}

type fakeEventEntry struct {
	cb      hci.EventHandler
	handler *hci.Handler
}

type issuedCommand struct {
	cmd        hci.Command
	onComplete func(evt.CommandComplete)
	onStatus   func(evt.CommandStatus)
	handler    *hci.Handler
}

func newFakeHciLayer() *fakeHciLayer {
	return &fakeHciLayer{
		hciHandler: hci.NewHandler(),
		queue:      hci.NewQueue(16),
		evth:       make(map[int]*fakeEventEntry),
		subh:       make(map[int]*fakeEventEntry),
	}
}

func (f *fakeHciLayer) EnqueueCommand(c hci.Command, onComplete func(evt.CommandComplete), h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = append(f.issued, issuedCommand{cmd: c, onComplete: onComplete, handler: h})
}

func (f *fakeHciLayer) EnqueueCommandWithStatus(c hci.Command, onStatus func(evt.CommandStatus), h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = append(f.issued, issuedCommand{cmd: c, onStatus: onStatus, handler: h})
}

func (f *fakeHciLayer) RegisterEventHandler(code int, cb hci.EventHandler, h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evth[code] = &fakeEventEntry{cb: cb, handler: h}
}

func (f *fakeHciLayer) UnregisterEventHandler(code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.evth, code)
}

func (f *fakeHciLayer) RegisterLeEventHandler(subCode int, cb hci.EventHandler, h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subh[subCode] = &fakeEventEntry{cb: cb, handler: h}
}

func (f *fakeHciLayer) UnregisterLeEventHandler(subCode int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subh, subCode)
}

func (f *fakeHciLayer) AclQueueEnd() *hci.QueueEnd { return f.queue.UpEnd() }
func (f *fakeHciLayer) HciHandler() *hci.Handler   { return f.hciHandler }

// sendEvent injects one HCI event's parameter bytes.
func (f *fakeHciLayer) sendEvent(code int, payload []byte) {
	f.mu.Lock()
	e := f.evth[code]
	f.mu.Unlock()
	if e == nil {
		return
	}
	e.handler.Post(func() { e.cb(payload) })
}

// sendLeEvent injects one LE meta event, subevent code included.
func (f *fakeHciLayer) sendLeEvent(subCode int, payload []byte) {
	f.mu.Lock()
	e := f.subh[subCode]
	f.mu.Unlock()
	if e == nil {
		return
	}
	e.handler.Post(func() { e.cb(payload) })
}

// sendAcl feeds an ACL packet (without the HCI indicator byte) to the
// ingress router.
func (f *fakeHciLayer) sendAcl(b []byte) bool {
	return f.queue.DownEnd().Enqueue(b)
}

func (f *fakeHciLayer) commands() []issuedCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]issuedCommand, len(f.issued))
	copy(out, f.issued)
	return out
}

func (f *fakeHciLayer) commandsWithOpcode(op int) []issuedCommand {
	var out []issuedCommand
	for _, c := range f.commands() {
		if c.cmd.OpCode() == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeHciLayer) close() {
	f.hciHandler.Close()
}

type fakeController struct {
	mu          sync.Mutex
	bufSize     int
	bufCnt      int
	leFeatures  uint64
	sink        func(handle uint16, cnt int)
	sinkHandler *hci.Handler
}

func newFakeController() *fakeController {
	return &fakeController{bufSize: 27, bufCnt: 4}
}

func (f *fakeController) BufferSize() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bufSize, f.bufCnt
}

func (f *fakeController) LeLocalSupportedFeatures() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.leFeatures
}

func (f *fakeController) RegisterCompletedPacketsSink(cb func(uint16, int), h *hci.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sink = cb
	f.sinkHandler = h
}

func (f *fakeController) completePackets(handle uint16, cnt int) {
	f.mu.Lock()
	sink, h := f.sink, f.sinkHandler
	f.mu.Unlock()
	if sink != nil {
		h.Post(func() { sink(handle, cnt) })
	}
}

// settle flushes the manager handler, the fake hci handler, and any
// extra handlers a few times so cross-posted tasks drain.
func settle(m *Manager, f *fakeHciLayer, extra ...*hci.Handler) {
	for n := 0; n < 4; n++ {
		m.handler.Sync()
		f.hciHandler.Sync()
		for _, h := range extra {
			h.Sync()
		}
	}
}

// Event fixtures. Raw byte layouts, the way the controller would send
// them.

func connectionCompleteEvt(status uint8, handle uint16, addr aclmgr.Addr) []byte {
	b := []byte{status, byte(handle), byte(handle >> 8)}
	b = append(b, addr[:]...)
	b = append(b, 0x01, 0x00) // ACL link, encryption off
	return b
}

func connectionRequestEvt(addr aclmgr.Addr) []byte {
	b := append([]byte{}, addr[:]...)
	b = append(b, 0x00, 0x1f, 0x00) // class of device
	b = append(b, 0x01)             // ACL
	return b
}

func disconnectionCompleteEvt(status uint8, handle uint16, reason uint8) []byte {
	return []byte{status, byte(handle), byte(handle >> 8), reason}
}

func leConnectionCompleteEvt(status uint8, handle uint16, addrType uint8, addr aclmgr.Addr) []byte {
	b := []byte{0x01, status, byte(handle), byte(handle >> 8), hci.RoleMaster, addrType}
	b = append(b, addr[:]...)
	b = append(b, 0x28, 0x00, 0x00, 0x00, 0xf4, 0x01, 0x00) // interval, latency, timeout, mca
	return b
}

func leEnhancedConnectionCompleteEvt(status uint8, handle uint16, addrType uint8,
	addr, localRpa, peerRpa aclmgr.Addr) []byte {
	b := []byte{0x0a, status, byte(handle), byte(handle >> 8), hci.RoleMaster, addrType}
	b = append(b, addr[:]...)
	b = append(b, localRpa[:]...)
	b = append(b, peerRpa[:]...)
	b = append(b, 0x28, 0x00, 0x00, 0x00, 0xf4, 0x01, 0x00)
	return b
}

func leConnectionUpdateCompleteEvt(status uint8, handle uint16) []byte {
	return []byte{0x03, status, byte(handle), byte(handle >> 8), 0x28, 0x00, 0x00, 0x00, 0xf4, 0x01}
}

// aclFragment builds an ACL packet without the HCI indicator byte, as
// the ingress router sees it.
func aclFragment(handle uint16, pbf uint8, payload []byte) []byte {
	return hci.BuildAclPacket(handle, pbf, payload)[1:]
}

func mustAddr(s string) aclmgr.Addr {
	a, err := aclmgr.NewAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Callback recorders.

type recordedConnect struct {
	conn   *ClassicConn
	addr   aclmgr.Addr
	reason hci.ErrCommand
	failed bool
}

type connectRecorder struct {
	mu     sync.Mutex
	events []recordedConnect
}

func (r *connectRecorder) OnConnectSuccess(c *ClassicConn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedConnect{conn: c, addr: c.Addr()})
}

func (r *connectRecorder) OnConnectFail(addr aclmgr.Addr, reason hci.ErrCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedConnect{addr: addr, reason: reason, failed: true})
}

func (r *connectRecorder) all() []recordedConnect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedConnect, len(r.events))
	copy(out, r.events)
	return out
}

type recordedLeConnect struct {
	conn   *LeConn
	addr   aclmgr.AddrWithType
	reason hci.ErrCommand
	failed bool
}

type leConnectRecorder struct {
	mu     sync.Mutex
	events []recordedLeConnect
}

func (r *leConnectRecorder) OnLeConnectSuccess(addr aclmgr.AddrWithType, c *LeConn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedLeConnect{conn: c, addr: addr})
}

func (r *leConnectRecorder) OnLeConnectFail(addr aclmgr.AddrWithType, reason hci.ErrCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedLeConnect{addr: addr, reason: reason, failed: true})
}

func (r *leConnectRecorder) all() []recordedLeConnect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedLeConnect, len(r.events))
	copy(out, r.events)
	return out
}

// newTestManager wires a manager over fakes, registers recorders, and
// returns everything a test needs. Callers must defer teardown.
func newTestManager() (*Manager, *fakeHciLayer, *fakeController, *connectRecorder, *leConnectRecorder, *hci.Handler, func()) {
	f := newFakeHciLayer()
	fc := newFakeController()
	m := NewManager(f, fc)
	m.Start()

	cbHandler := hci.NewHandler()
	cr := &connectRecorder{}
	lr := &leConnectRecorder{}
	m.RegisterCallbacks(cr, cbHandler)
	m.RegisterLeCallbacks(lr, cbHandler)
	settle(m, f, cbHandler)

	teardown := func() {
		m.Stop()
		cbHandler.Close()
		f.close()
	}
	return m, f, fc, cr, lr, cbHandler, teardown
}
