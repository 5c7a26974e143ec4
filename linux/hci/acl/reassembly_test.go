package acl

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rigado/aclmgr"
	"github.com/rigado/aclmgr/linux/hci"
)

// reassemblyFixture drives a connection record directly, without a
// manager around it.
type reassemblyFixture struct {
	handler *hci.Handler
	conn    *aclConnection
}

func newReassemblyFixture() *reassemblyFixture {
	h := hci.NewHandler()
	return &reassemblyFixture{
		handler: h,
		conn: newAclConnection(0x0040,
			aclmgr.AddrWithType{Addr: mustAddr("aa:bb:cc:dd:ee:ff"), Type: aclmgr.PublicDevice},
			hci.RoleMaster, linkClassic, h),
	}
}

func (f *reassemblyFixture) feed(pbf uint8, payload []byte) {
	f.handler.Post(func() {
		f.conn.onIncomingPacket(hci.AclPacket(aclFragment(0x0040, pbf, payload)))
	})
	f.handler.Sync()
	f.handler.Sync()
}

func (f *reassemblyFixture) next() []byte {
	f.handler.Sync()
	return f.conn.queue.UpEnd().TryDequeue()
}

func (f *reassemblyFixture) close() {
	f.handler.Close()
}

// Any valid FIRST+CONTINUING split of a PDU reassembles to exactly the
// declared length plus the four header bytes.
func TestReassemblyArbitrarySplits(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		f := newReassemblyFixture()

		bodyLen := rnd.Intn(200)
		pdu := make([]byte, 4+bodyLen)
		pdu[0] = byte(bodyLen)
		pdu[1] = byte(bodyLen >> 8)
		pdu[2] = 0x01
		for n := 4; n < len(pdu); n++ {
			pdu[n] = byte(rnd.Int())
		}

		// split into a first fragment carrying at least the header, then
		// arbitrary continuations
		firstLen := 4 + rnd.Intn(len(pdu)-3)
		f.feed(hci.PbfFirstFlushable, pdu[:firstLen])
		rest := pdu[firstLen:]
		for len(rest) > 0 {
			n := 1 + rnd.Intn(len(rest))
			f.feed(hci.PbfContinuing, rest[:n])
			rest = rest[n:]
		}

		got := f.next()
		if !bytes.Equal(got, pdu) {
			t.Fatalf("trial %d: want % x, got % x", trial, pdu, got)
		}
		if extra := f.next(); extra != nil {
			t.Fatalf("trial %d: extra pdu % x", trial, extra)
		}
		f.close()
	}
}

func TestReassemblyFirstWithoutFinishingPrevious(t *testing.T) {
	f := newReassemblyFixture()
	defer f.close()

	// a first fragment that promises more data...
	f.feed(hci.PbfFirstFlushable, []byte{0x08, 0x00, 0x01, 0x00, 0x11, 0x22})
	// ...then a new first: the old buffer is discarded, the new PDU wins
	pdu := []byte{0x02, 0x00, 0x01, 0x00, 0x33, 0x44}
	f.feed(hci.PbfFirstFlushable, pdu)

	if got := f.next(); !bytes.Equal(got, pdu) {
		t.Fatalf("want % x, got % x", pdu, got)
	}
	if extra := f.next(); extra != nil {
		t.Fatalf("discarded pdu resurfaced: % x", extra)
	}
}

func TestReassemblyShortHeaderDropped(t *testing.T) {
	f := newReassemblyFixture()
	defer f.close()

	f.feed(hci.PbfFirstFlushable, []byte{0x04, 0x00})
	if got := f.next(); got != nil {
		t.Fatalf("short header produced a pdu: % x", got)
	}
	if f.conn.remainingBytes != 0 {
		t.Fatalf("short header left remaining bytes %d", f.conn.remainingBytes)
	}
}

func TestReassemblyFirstNonFlushableDropped(t *testing.T) {
	f := newReassemblyFixture()
	defer f.close()

	f.feed(hci.PbfFirstNonFlushable, []byte{0x01, 0x00, 0x01, 0x00, 0xff})
	if got := f.next(); got != nil {
		t.Fatalf("non-flushable start produced a pdu: % x", got)
	}
}

func TestReassemblyLongPdu(t *testing.T) {
	f := newReassemblyFixture()
	defer f.close()

	bodyLen := 270
	pdu := make([]byte, 4+bodyLen)
	pdu[0] = byte(bodyLen)
	pdu[1] = byte(bodyLen >> 8)
	pdu[2] = 0x01
	for n := 4; n < len(pdu); n++ {
		pdu[n] = byte(n)
	}

	f.feed(hci.PbfFirstFlushable, pdu[:27])
	rest := pdu[27:]
	for len(rest) > 0 {
		n := 27
		if n > len(rest) {
			n = len(rest)
		}
		f.feed(hci.PbfContinuing, rest[:n])
		rest = rest[n:]
	}

	if got := f.next(); !bytes.Equal(got, pdu) {
		t.Fatalf("long pdu mismatch: want %d bytes, got %d", len(pdu), len(got))
	}

	// a continuation after completion is a protocol violation and is
	// dropped on its own
	f.feed(hci.PbfContinuing, []byte{0xee})
	if extra := f.next(); extra != nil {
		t.Fatalf("stray continuation produced a pdu: % x", extra)
	}
}
