package acl

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
	"github.com/rigado/aclmgr/linux/hci/cmd"
	"github.com/rigado/aclmgr/linux/hci/evt"
)

var (
	peerA = mustAddr("aa:bb:cc:dd:ee:ff")
	peerB = mustAddr("11:22:33:44:55:66")
)

func TestClassicConnectDataDisconnect(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)

	events := cr.all()
	if len(events) != 1 || events[0].failed {
		t.Fatalf("want one connect success, got %+v", events)
	}
	conn := events[0].conn
	if conn.Handle() != 0x0040 {
		t.Fatalf("want handle 0x0040, got 0x%04x", conn.Handle())
	}
	if conn.Addr() != peerA {
		t.Fatalf("want peer %s, got %s", peerA, conn.Addr())
	}

	// one complete L2CAP PDU in a single automatically-flushable fragment
	pdu := []byte{0x04, 0x00, 0x01, 0x00, 0xaa, 0xbb, 0xcc, 0xdd}
	f.sendAcl(aclFragment(0x0040, hci.PbfFirstFlushable, pdu))
	settle(m, f, cbHandler)

	got := conn.GetAclQueueEnd().TryDequeue()
	if !bytes.Equal(got, pdu) {
		t.Fatalf("want pdu % x, got % x", pdu, got)
	}

	var gotReason hci.ErrCommand
	disconnected := make(chan struct{})
	conn.RegisterDisconnectCallback(func(reason hci.ErrCommand) {
		gotReason = reason
		close(disconnected)
	}, cbHandler)
	settle(m, f, cbHandler)

	f.sendEvent(evt.DisconnectionCompleteCode, disconnectionCompleteEvt(0x00, 0x0040, 0x13))
	settle(m, f, cbHandler)

	select {
	case <-disconnected:
	default:
		t.Fatal("disconnect callback did not fire")
	}
	if gotReason != hci.ErrRemoteUser {
		t.Fatalf("want reason 0x13, got %#x", uint8(gotReason))
	}
}

func TestFragmentedReassembly(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	f.sendAcl(aclFragment(0x0040, hci.PbfFirstFlushable, []byte{0x08, 0x00, 0x01, 0x00, 0x11, 0x22, 0x33, 0x44}))
	f.sendAcl(aclFragment(0x0040, hci.PbfContinuing, []byte{0x55, 0x56, 0x57, 0x58}))
	settle(m, f, cbHandler)

	want := []byte{0x08, 0x00, 0x01, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x56, 0x57, 0x58}
	got := conn.GetAclQueueEnd().TryDequeue()
	if !bytes.Equal(got, want) {
		t.Fatalf("want pdu % x, got % x", want, got)
	}
	if extra := conn.GetAclQueueEnd().TryDequeue(); extra != nil {
		t.Fatalf("want exactly one pdu, got extra % x", extra)
	}
}

func TestMalformedContinuationDropped(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	pdu := []byte{0x04, 0x00, 0x01, 0x00, 0xaa, 0xbb, 0xcc, 0xdd}
	f.sendAcl(aclFragment(0x0040, hci.PbfFirstFlushable, pdu))
	f.sendAcl(aclFragment(0x0040, hci.PbfContinuing, []byte{0xee}))
	settle(m, f, cbHandler)

	got := conn.GetAclQueueEnd().TryDequeue()
	if !bytes.Equal(got, pdu) {
		t.Fatalf("want first pdu % x, got % x", pdu, got)
	}
	if extra := conn.GetAclQueueEnd().TryDequeue(); extra != nil {
		t.Fatalf("stray continuation produced a pdu: % x", extra)
	}
}

func TestContinuingWithoutFirst(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	f.sendAcl(aclFragment(0x0040, hci.PbfContinuing, []byte{0x01, 0x02}))
	settle(m, f, cbHandler)

	if got := conn.GetAclQueueEnd().TryDequeue(); got != nil {
		t.Fatalf("continuation without first produced a pdu: % x", got)
	}
	rec := m.impl.lookup(0x0040)
	if len(rec.recombination) != 0 || rec.remainingBytes != 0 {
		t.Fatalf("recombination state not empty: %d bytes, %d remaining",
			len(rec.recombination), rec.remainingBytes)
	}
}

func TestZeroLengthPduEmittedImmediately(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	pdu := []byte{0x00, 0x00, 0x01, 0x00}
	f.sendAcl(aclFragment(0x0040, hci.PbfFirstFlushable, pdu))
	settle(m, f, cbHandler)

	if got := conn.GetAclQueueEnd().TryDequeue(); !bytes.Equal(got, pdu) {
		t.Fatalf("want % x, got % x", pdu, got)
	}
}

func TestDebugHandleDropped(t *testing.T) {
	m, f, _, _, _, cbHandler, teardown := newTestManager()
	defer teardown()

	// a connection on the debug handle would be a controller bug; traffic
	// on it must vanish without touching any state
	f.sendAcl(aclFragment(hci.QualcommDebugHandle, hci.PbfFirstFlushable,
		[]byte{0x01, 0x00, 0x01, 0x00, 0xff}))
	settle(m, f, cbHandler)

	m.impl.muConns.Lock()
	n := len(m.impl.connections)
	m.impl.muConns.Unlock()
	if n != 0 {
		t.Fatalf("debug handle traffic created state: %d connections", n)
	}
}

func TestInboundOverflowDrops(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	// the queue holds 10 and the staging buffer 11 more; everything past
	// that is dropped
	total := 30
	for n := 0; n < total; n++ {
		f.sendAcl(aclFragment(0x0040, hci.PbfFirstFlushable, []byte{0x01, 0x00, 0x01, 0x00, byte(n)}))
		settle(m, f, cbHandler)
	}

	delivered := 0
	for conn.GetAclQueueEnd().TryDequeue() != nil {
		delivered++
		settle(m, f, cbHandler)
	}
	if delivered == 0 || delivered >= total {
		t.Fatalf("want some but not all of %d pdus delivered, got %d", total, delivered)
	}
}

func TestLeConnectFailure(t *testing.T) {
	m, f, _, _, lr, cbHandler, teardown := newTestManager()
	defer teardown()

	m.CreateLeConnection(aclmgr.AddrWithType{Addr: peerB, Type: aclmgr.PublicDevice})
	settle(m, f, cbHandler)

	f.sendLeEvent(evt.LEConnectionCompleteSubCode,
		leConnectionCompleteEvt(0x3e, 0x0041, uint8(aclmgr.PublicDevice), peerB))
	settle(m, f, cbHandler)

	events := lr.all()
	if len(events) != 1 || !events[0].failed {
		t.Fatalf("want one le connect fail, got %+v", events)
	}
	if events[0].reason != hci.ErrEstablished {
		t.Fatalf("want reason 0x3e, got %#x", uint8(events[0].reason))
	}
	if events[0].addr.Addr != peerB || events[0].addr.Type != aclmgr.PublicDevice {
		t.Fatalf("want %s public, got %s", peerB, events[0].addr)
	}
	if m.impl.lookup(0x0041) != nil {
		t.Fatal("failed connection must not be in the table")
	}
}

func TestEnhancedConnectionReportsRpa(t *testing.T) {
	m, f, _, _, lr, cbHandler, teardown := newTestManager()
	defer teardown()

	identity := mustAddr("0a:0b:0c:0d:0e:0f")
	rpa := mustAddr("11:22:33:44:55:66")
	m.CreateLeConnection(aclmgr.AddrWithType{Addr: rpa, Type: aclmgr.RandomDevice})
	settle(m, f, cbHandler)

	f.sendLeEvent(evt.LEEnhancedConnectionCompleteSubCode,
		leEnhancedConnectionCompleteEvt(0x00, 0x0041, uint8(aclmgr.PublicIdentity),
			identity, aclmgr.Addr{}, rpa))
	settle(m, f, cbHandler)

	events := lr.all()
	if len(events) != 1 || events[0].failed {
		t.Fatalf("want one le connect success, got %+v", events)
	}
	want := aclmgr.AddrWithType{Addr: rpa, Type: aclmgr.RandomDevice}
	if events[0].addr != want {
		t.Fatalf("want reporting address %s, got %s", want, events[0].addr)
	}
}

func TestQueuedOutboundClassicConnect(t *testing.T) {
	m, f, _, _, _, cbHandler, teardown := newTestManager()
	defer teardown()

	createOp := (&cmd.CreateConnection{}).OpCode()

	m.CreateConnection(peerA)
	settle(m, f, cbHandler)
	if n := len(f.commandsWithOpcode(createOp)); n != 1 {
		t.Fatalf("want 1 create connection, got %d", n)
	}

	m.CreateConnection(peerB)
	settle(m, f, cbHandler)
	if n := len(f.commandsWithOpcode(createOp)); n != 1 {
		t.Fatalf("second create connection must wait, got %d", n)
	}

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)

	creates := f.commandsWithOpcode(createOp)
	if len(creates) != 2 {
		t.Fatalf("want create connection for B after A completed, got %d", len(creates))
	}
	second := creates[1].cmd.(*cmd.CreateConnection)
	if aclmgr.Addr(second.BDADDR) != peerB {
		t.Fatalf("want create connection to %s, got %s", peerB, aclmgr.Addr(second.BDADDR))
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	if !conn.Disconnect(0x13) {
		t.Fatal("first disconnect must be accepted")
	}
	settle(m, f, cbHandler)

	disconnectOp := (&cmd.Disconnect{}).OpCode()
	if n := len(f.commandsWithOpcode(disconnectOp)); n != 1 {
		t.Fatalf("want 1 disconnect command, got %d", n)
	}

	f.sendEvent(evt.DisconnectionCompleteCode, disconnectionCompleteEvt(0x00, 0x0040, 0x16))
	settle(m, f, cbHandler)

	if conn.Disconnect(0x13) {
		t.Fatal("disconnect after disconnection must return false")
	}
	if conn.ReadRssi() {
		t.Fatal("operations on a gone handle must return false")
	}
	settle(m, f, cbHandler)
	if n := len(f.commandsWithOpcode(disconnectOp)); n != 1 {
		t.Fatalf("no hci traffic after disconnect, got %d disconnects", n)
	}
	if n := len(f.commandsWithOpcode((&cmd.ReadRSSI{}).OpCode())); n != 0 {
		t.Fatalf("no hci traffic after disconnect, got %d read rssi", n)
	}
}

func TestRegisterDisconnectLate(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	f.sendEvent(evt.DisconnectionCompleteCode, disconnectionCompleteEvt(0x00, 0x0040, 0x13))
	settle(m, f, cbHandler)

	fired := 0
	var gotReason hci.ErrCommand
	conn.RegisterDisconnectCallback(func(reason hci.ErrCommand) {
		fired++
		gotReason = reason
	}, cbHandler)
	settle(m, f, cbHandler)

	if fired != 1 {
		t.Fatalf("late-registered disconnect callback fired %d times", fired)
	}
	if gotReason != hci.ErrRemoteUser {
		t.Fatalf("want reason 0x13, got %#x", uint8(gotReason))
	}
}

func TestLeConnectionUpdateSinglePending(t *testing.T) {
	m, f, _, _, lr, cbHandler, teardown := newTestManager()
	defer teardown()

	m.CreateLeConnection(aclmgr.AddrWithType{Addr: peerB, Type: aclmgr.PublicDevice})
	settle(m, f, cbHandler)
	f.sendLeEvent(evt.LEConnectionCompleteSubCode,
		leConnectionCompleteEvt(0x00, 0x0041, uint8(aclmgr.PublicDevice), peerB))
	settle(m, f, cbHandler)
	conn := lr.all()[0].conn

	first := 0
	ok := conn.LeConnectionUpdate(0x0010, 0x0020, 0x0000, 0x01f4, 0x0002, 0x0c00,
		func(hci.ErrCommand) { first++ }, cbHandler)
	if !ok {
		t.Fatal("first update must be accepted")
	}

	if conn.LeConnectionUpdate(0x0010, 0x0020, 0x0000, 0x01f4, 0x0002, 0x0c00,
		func(hci.ErrCommand) {}, cbHandler) {
		t.Fatal("second concurrent update must be rejected")
	}
	settle(m, f, cbHandler)

	if n := len(f.commandsWithOpcode((&cmd.LEConnectionUpdate{}).OpCode())); n != 1 {
		t.Fatalf("want exactly 1 le connection update command, got %d", n)
	}

	f.sendLeEvent(evt.LEConnectionUpdateCompleteSubCode, leConnectionUpdateCompleteEvt(0x00, 0x0041))
	settle(m, f, cbHandler)
	if first != 1 {
		t.Fatalf("first update callback fired %d times", first)
	}

	// slot is free again
	if !conn.LeConnectionUpdate(0x0010, 0x0020, 0x0000, 0x01f4, 0x0002, 0x0c00,
		func(hci.ErrCommand) {}, cbHandler) {
		t.Fatal("update after completion must be accepted")
	}
}

func TestLeConnectionUpdateValidation(t *testing.T) {
	m, f, _, _, lr, cbHandler, teardown := newTestManager()
	defer teardown()

	m.CreateLeConnection(aclmgr.AddrWithType{Addr: peerB, Type: aclmgr.PublicDevice})
	settle(m, f, cbHandler)
	f.sendLeEvent(evt.LEConnectionCompleteSubCode,
		leConnectionCompleteEvt(0x00, 0x0041, uint8(aclmgr.PublicDevice), peerB))
	settle(m, f, cbHandler)
	conn := lr.all()[0].conn

	cases := []struct {
		name                   string
		intMin, intMax         uint16
		latency, timeout       uint16
	}{
		{"interval min too small", 0x0005, 0x0020, 0, 0x01f4},
		{"interval min too large", 0x0c81, 0x0c81, 0, 0x01f4},
		{"interval max too small", 0x0010, 0x0005, 0, 0x01f4},
		{"latency too large", 0x0010, 0x0020, 0x01f4, 0x01f4},
		{"timeout too small", 0x0010, 0x0020, 0, 0x0009},
		{"timeout too large", 0x0010, 0x0020, 0, 0x0c81},
	}
	for _, c := range cases {
		if conn.LeConnectionUpdate(c.intMin, c.intMax, c.latency, c.timeout, 0x0002, 0x0c00,
			func(hci.ErrCommand) {}, cbHandler) {
			t.Errorf("%s: update must be rejected", c.name)
		}
	}
	settle(m, f, cbHandler)
	if n := len(f.commandsWithOpcode((&cmd.LEConnectionUpdate{}).OpCode())); n != 0 {
		t.Fatalf("invalid parameters must not reach hci, got %d commands", n)
	}

	// a rejected update leaves the slot free
	if !conn.LeConnectionUpdate(0x0010, 0x0020, 0x0000, 0x01f4, 0x0002, 0x0c00,
		func(hci.ErrCommand) {}, cbHandler) {
		t.Fatal("valid update after rejections must be accepted")
	}
}

func TestConnectionRequestPolicies(t *testing.T) {
	m, f, _, _, _, cbHandler, teardown := newTestManager()
	defer teardown()

	acceptOp := (&cmd.AcceptConnectionRequest{}).OpCode()
	rejectOp := (&cmd.RejectConnectionRequest{}).OpCode()

	// default predicate accepts
	f.sendEvent(evt.ConnectionRequestCode, connectionRequestEvt(peerA))
	settle(m, f, cbHandler)
	if n := len(f.commandsWithOpcode(acceptOp)); n != 1 {
		t.Fatalf("want accept, got %d accepts", n)
	}
	accept := f.commandsWithOpcode(acceptOp)[0].cmd.(*cmd.AcceptConnectionRequest)
	if accept.Role != acceptRoleBecomeMaster {
		t.Fatalf("accept must request master role, got %d", accept.Role)
	}

	// an already-connected peer is rejected with UNACCEPTABLE_BD_ADDR
	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	f.sendEvent(evt.ConnectionRequestCode, connectionRequestEvt(peerA))
	settle(m, f, cbHandler)
	rejects := f.commandsWithOpcode(rejectOp)
	if len(rejects) != 1 {
		t.Fatalf("want 1 reject, got %d", len(rejects))
	}
	if reason := rejects[0].cmd.(*cmd.RejectConnectionRequest).Reason; reason != uint8(hci.ErrBDADDR) {
		t.Fatalf("want reason UNACCEPTABLE_BD_ADDR, got %#x", reason)
	}

	// a refusing predicate rejects with LIMITED_RESOURCES
	m.SetAcceptPredicate(func(aclmgr.Addr, [3]byte) bool { return false })
	settle(m, f, cbHandler)
	f.sendEvent(evt.ConnectionRequestCode, connectionRequestEvt(peerB))
	settle(m, f, cbHandler)
	rejects = f.commandsWithOpcode(rejectOp)
	if len(rejects) != 2 {
		t.Fatalf("want 2 rejects, got %d", len(rejects))
	}
	if reason := rejects[1].cmd.(*cmd.RejectConnectionRequest).Reason; reason != uint8(hci.ErrLimitedResource) {
		t.Fatalf("want reason LIMITED_RESOURCES, got %#x", reason)
	}
}

func TestAcceptFailureSelfCancels(t *testing.T) {
	m, f, _, _, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionRequestCode, connectionRequestEvt(peerA))
	settle(m, f, cbHandler)

	accepts := f.commandsWithOpcode((&cmd.AcceptConnectionRequest{}).OpCode())
	if len(accepts) != 1 {
		t.Fatalf("want 1 accept, got %d", len(accepts))
	}

	// controller refuses the accept; the implicit connect self-cancels
	status := []byte{uint8(hci.ErrDisallowed), 0x01,
		byte(accepts[0].cmd.OpCode()), byte(accepts[0].cmd.OpCode() >> 8)}
	cb := accepts[0].onStatus
	accepts[0].handler.Post(func() { cb(evt.CommandStatus(status)) })
	settle(m, f, cbHandler)

	if n := len(f.commandsWithOpcode((&cmd.CreateConnectionCancel{}).OpCode())); n != 1 {
		t.Fatalf("want 1 create connection cancel, got %d", n)
	}
}

func TestExtendedLeCreateSetsRandomAddress(t *testing.T) {
	f := newFakeHciLayer()
	defer f.close()
	fc := newFakeController()
	fc.leFeatures = hci.LeExtendedAdvertisingFeatureBit
	m := NewManager(f, fc)
	m.Start()
	defer m.Stop()
	cbHandler := hci.NewHandler()
	defer cbHandler.Close()
	lr := &leConnectRecorder{}
	m.RegisterLeCallbacks(lr, cbHandler)

	m.CreateLeConnection(aclmgr.AddrWithType{Addr: peerB, Type: aclmgr.PublicDevice})
	settle(m, f, cbHandler)

	setAddrs := f.commandsWithOpcode((&cmd.LESetRandomAddress{}).OpCode())
	if len(setAddrs) != 1 {
		t.Fatalf("want le set random address before extended create, got %d", len(setAddrs))
	}
	random := aclmgr.Addr(setAddrs[0].cmd.(*cmd.LESetRandomAddress).RandomAddress)
	if random[5]&0xc0 != 0xc0 {
		t.Fatalf("static random address must have the two msbs set, got %s", random)
	}
	if n := len(f.commandsWithOpcode((&cmd.LEExtendedCreateConnection{}).OpCode())); n != 1 {
		t.Fatalf("want extended create connection, got %d", n)
	}
	if n := len(f.commandsWithOpcode((&cmd.LECreateConnection{}).OpCode())); n != 0 {
		t.Fatalf("legacy create must not be used with the extended feature bit, got %d", n)
	}
}

func TestFinishRemovesHandle(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	// finish before disconnect violates the precondition and must not
	// remove the record
	conn.Finish()
	settle(m, f, cbHandler)
	if m.impl.lookup(0x0040) == nil {
		t.Fatal("finish before disconnect must not remove the connection")
	}

	f.sendEvent(evt.DisconnectionCompleteCode, disconnectionCompleteEvt(0x00, 0x0040, 0x13))
	settle(m, f, cbHandler)
	conn.Finish()
	settle(m, f, cbHandler)
	if m.impl.lookup(0x0040) != nil {
		t.Fatal("finish after disconnect must remove the connection")
	}
}

func TestManagementCallbackRouting(t *testing.T) {
	m, f, _, cr, _, cbHandler, teardown := newTestManager()
	defer teardown()

	f.sendEvent(evt.ConnectionCompleteCode, connectionCompleteEvt(0x00, 0x0040, peerA))
	settle(m, f, cbHandler)
	conn := cr.all()[0].conn

	sink := &mgmtRecorder{}
	conn.RegisterCallbacks(sink, cbHandler)
	settle(m, f, cbHandler)

	// mode change routes current mode and interval
	f.sendEvent(evt.ModeChangeCode, []byte{0x00, 0x40, 0x00, 0x02, 0x34, 0x12})
	// a failing event is logged, not routed
	f.sendEvent(evt.ReadClockOffsetCompleteCode, []byte{uint8(hci.ErrHardware), 0x40, 0x00, 0x00, 0x00})
	settle(m, f, cbHandler)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.modeChanges) != 1 || sink.modeChanges[0] != 0x1234 {
		t.Fatalf("want one mode change with interval 0x1234, got %v", sink.modeChanges)
	}
	if sink.clockOffsets != 0 {
		t.Fatalf("failed read clock offset must not reach callbacks, got %d", sink.clockOffsets)
	}
}

// mgmtRecorder embeds the no-op base and records what the tests assert.
type mgmtRecorder struct {
	noopManagementCallbacks
	mu           sync.Mutex
	modeChanges  []uint16
	clockOffsets int
}

func (r *mgmtRecorder) OnModeChange(mode uint8, interval uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modeChanges = append(r.modeChanges, interval)
}

func (r *mgmtRecorder) OnReadClockOffsetComplete(offset uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clockOffsets++
}

// noopManagementCallbacks keeps test sinks small.
type noopManagementCallbacks struct{}

func (noopManagementCallbacks) OnConnectionPacketTypeChanged(uint16)                             {}
func (noopManagementCallbacks) OnAuthenticationComplete()                                        {}
func (noopManagementCallbacks) OnEncryptionChange(uint8)                                         {}
func (noopManagementCallbacks) OnChangeConnectionLinkKeyComplete()                               {}
func (noopManagementCallbacks) OnMasterLinkKeyComplete(uint8)                                    {}
func (noopManagementCallbacks) OnReadClockOffsetComplete(uint16)                                 {}
func (noopManagementCallbacks) OnModeChange(uint8, uint16)                                       {}
func (noopManagementCallbacks) OnQosSetupComplete(uint8, uint32, uint32, uint32, uint32)         {}
func (noopManagementCallbacks) OnRoleChange(uint8)                                               {}
func (noopManagementCallbacks) OnFlowSpecificationComplete(uint8, uint8, uint32, uint32, uint32, uint32) {
}
func (noopManagementCallbacks) OnFlushOccurred()                                        {}
func (noopManagementCallbacks) OnReadRemoteSupportedFeaturesComplete(uint64)            {}
func (noopManagementCallbacks) OnReadRemoteExtendedFeaturesComplete(uint8, uint8, uint64) {}
func (noopManagementCallbacks) OnReadRemoteVersionInformationComplete(uint8, uint16, uint16) {}
func (noopManagementCallbacks) OnLinkSupervisionTimeoutChanged(uint16)                  {}
func (noopManagementCallbacks) OnRoleDiscoveryComplete(uint8)                           {}
func (noopManagementCallbacks) OnReadLinkPolicySettingsComplete(uint16)                 {}
func (noopManagementCallbacks) OnReadAutomaticFlushTimeoutComplete(uint16)              {}
func (noopManagementCallbacks) OnReadTransmitPowerLevelComplete(int8)                   {}
func (noopManagementCallbacks) OnReadLinkSupervisionTimeoutComplete(uint16)             {}
func (noopManagementCallbacks) OnReadFailedContactCounterComplete(uint16)               {}
func (noopManagementCallbacks) OnReadLinkQualityComplete(uint8)                         {}
func (noopManagementCallbacks) OnReadAfhChannelMapComplete(uint8, [10]byte)             {}
func (noopManagementCallbacks) OnReadRssiComplete(int8)                                 {}
func (noopManagementCallbacks) OnReadClockComplete(uint32, uint16)                      {}
