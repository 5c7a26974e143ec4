package acl

import (
	"bytes"
	"testing"

	"github.com/rigado/aclmgr/linux/hci"
)

type schedFixture struct {
	handler *hci.Handler
	fc      *fakeController
	txQueue *hci.Queue
	sched   *RoundRobinScheduler
}

func newSchedFixture(bufSize, bufCnt int) *schedFixture {
	s := &schedFixture{
		handler: hci.NewHandler(),
		fc:      &fakeController{bufSize: bufSize, bufCnt: bufCnt},
		txQueue: hci.NewQueue(16),
	}
	s.sched = NewRoundRobinScheduler(s.handler, s.fc, s.txQueue.UpEnd())
	return s
}

func (s *schedFixture) register(handle uint16, q *hci.Queue) {
	s.handler.Post(func() { s.sched.Register(handle, q.DownEnd()) })
	s.handler.Sync()
}

func (s *schedFixture) drainTx() []hci.AclPacket {
	var out []hci.AclPacket
	for {
		s.handler.Sync()
		b := s.txQueue.DownEnd().TryDequeue()
		if b == nil {
			return out
		}
		// strip the HCI indicator byte
		out = append(out, hci.AclPacket(b[1:]))
	}
}

func (s *schedFixture) close() {
	s.handler.Close()
}

func TestSchedulerFragmentsToBufferSize(t *testing.T) {
	s := newSchedFixture(8, 8)
	defer s.close()

	connQueue := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	s.register(0x0040, connQueue)

	pdu := make([]byte, 20)
	for n := range pdu {
		pdu[n] = byte(n)
	}
	connQueue.UpEnd().Enqueue(pdu)

	pkts := s.drainTx()
	if len(pkts) != 3 {
		t.Fatalf("want 3 fragments of a 20 byte pdu at mtu 8, got %d", len(pkts))
	}
	if pkts[0].Pbf() != hci.PbfFirstNonFlushable {
		t.Fatalf("first fragment pbf = %d", pkts[0].Pbf())
	}
	var joined []byte
	for n, p := range pkts {
		if n > 0 && p.Pbf() != hci.PbfContinuing {
			t.Fatalf("fragment %d pbf = %d", n, p.Pbf())
		}
		if p.Handle() != 0x0040 {
			t.Fatalf("fragment %d handle = 0x%04x", n, p.Handle())
		}
		if !p.Valid() {
			t.Fatalf("fragment %d invalid", n)
		}
		joined = append(joined, p.Payload()...)
	}
	if !bytes.Equal(joined, pdu) {
		t.Fatalf("fragments do not reassemble the pdu: % x", joined)
	}
}

func TestSchedulerParksWithoutCredits(t *testing.T) {
	// pool holds bufCnt-1 = 2 credits
	s := newSchedFixture(8, 3)
	defer s.close()

	connQueue := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	s.register(0x0040, connQueue)

	connQueue.UpEnd().Enqueue(make([]byte, 20)) // 3 fragments

	if pkts := s.drainTx(); len(pkts) != 2 {
		t.Fatalf("want 2 fragments before credits run out, got %d", len(pkts))
	}

	s.fc.completePackets(0x0040, 1)
	if pkts := s.drainTx(); len(pkts) != 1 {
		t.Fatalf("want the parked fragment after one credit, got %d", len(pkts))
	}
}

func TestSchedulerRoundRobinAcrossHandles(t *testing.T) {
	s := newSchedFixture(32, 16)
	defer s.close()

	qa := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	qb := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	s.register(0x0040, qa)
	s.register(0x0041, qb)

	// two PDUs per handle, each one fragment
	qa.UpEnd().Enqueue([]byte{0xa1})
	qa.UpEnd().Enqueue([]byte{0xa2})
	qb.UpEnd().Enqueue([]byte{0xb1})
	qb.UpEnd().Enqueue([]byte{0xb2})

	pkts := s.drainTx()
	if len(pkts) != 4 {
		t.Fatalf("want 4 packets, got %d", len(pkts))
	}

	// per-handle FIFO must hold regardless of interleaving
	var a, b []byte
	for _, p := range pkts {
		switch p.Handle() {
		case 0x0040:
			a = append(a, p.Payload()...)
		case 0x0041:
			b = append(b, p.Payload()...)
		}
	}
	if !bytes.Equal(a, []byte{0xa1, 0xa2}) {
		t.Fatalf("handle 0x40 order: % x", a)
	}
	if !bytes.Equal(b, []byte{0xb1, 0xb2}) {
		t.Fatalf("handle 0x41 order: % x", b)
	}
}

func TestSchedulerSetDisconnectReclaimsCredits(t *testing.T) {
	s := newSchedFixture(8, 3) // 2 credits
	defer s.close()

	qa := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	qb := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	s.register(0x0040, qa)
	s.register(0x0041, qb)

	// handle 0x40 eats both credits and still has a fragment parked
	qa.UpEnd().Enqueue(make([]byte, 20))
	if pkts := s.drainTx(); len(pkts) != 2 {
		t.Fatalf("want 2 fragments, got %d", len(pkts))
	}

	qb.UpEnd().Enqueue([]byte{0xb1})
	if pkts := s.drainTx(); len(pkts) != 0 {
		t.Fatalf("no credits left, got %d packets", len(pkts))
	}

	// dropping 0x40 returns its credits immediately; 0x41 proceeds
	s.handler.Post(func() { s.sched.SetDisconnect(0x0040) })
	pkts := s.drainTx()
	if len(pkts) != 1 || pkts[0].Handle() != 0x0041 {
		t.Fatalf("want handle 0x41 packet after reclaim, got %+v", pkts)
	}
}

func TestSchedulerUnregisterStopsDraining(t *testing.T) {
	s := newSchedFixture(32, 8)
	defer s.close()

	qa := hci.NewQueue(hci.MaxQueuedPacketsPerConnection)
	s.register(0x0040, qa)
	s.handler.Post(func() { s.sched.Unregister(0x0040) })
	s.handler.Sync()

	qa.UpEnd().Enqueue([]byte{0xa1})
	if pkts := s.drainTx(); len(pkts) != 0 {
		t.Fatalf("unregistered handle must not be drained, got %d packets", len(pkts))
	}
}
