package acl

import (
	"github.com/rigado/aclmgr/linux/hci"
)

type schedEntry struct {
	handle       uint16
	end          *hci.QueueEnd
	client       *hci.Client
	disconnected bool

	// fragments of a PDU taken from the queue but not yet credited
	pending [][]byte
}

// RoundRobinScheduler drains per-connection outbound queues into the
// transport's ACL TX path. One PDU per handle per round; every fragment
// costs one controller buffer credit, returned by Number Of Completed
// Packets. All state lives on the HCI handler.
type RoundRobinScheduler struct {
	handler *hci.Handler
	hciEnd  *hci.QueueEnd
	pool    *hci.Pool

	bufSize int

	entries map[uint16]*schedEntry
	order   []uint16
	next    int
}

// NewRoundRobinScheduler sizes its credit pool from the controller's
// buffer report and registers for completed-packet accounting.
func NewRoundRobinScheduler(handler *hci.Handler, ctrl hci.Controller, hciEnd *hci.QueueEnd) *RoundRobinScheduler {
	bufSize, bufCnt := ctrl.BufferSize()
	if bufSize <= 0 {
		// 27 bytes is the LE-U minimum [Vol 6, Part B, 2.4].
		bufSize = 27
	}
	if bufCnt <= 1 {
		bufCnt = 2
	}
	s := &RoundRobinScheduler{
		handler: handler,
		hciEnd:  hciEnd,
		pool:    hci.NewPool(1+4+bufSize, bufCnt-1),
		bufSize: bufSize,
		entries: make(map[uint16]*schedEntry),
	}
	ctrl.RegisterCompletedPacketsSink(s.onPacketsCompleted, handler)
	return s
}

// Register begins draining a connection's outbound queue. Runs on the
// HCI handler.
func (s *RoundRobinScheduler) Register(handle uint16, end *hci.QueueEnd) {
	if _, ok := s.entries[handle]; ok {
		logger.Warnf("scheduler register for duplicate handle 0x%03x", handle)
		return
	}
	s.entries[handle] = &schedEntry{handle: handle, end: end, client: hci.NewClient(s.pool)}
	s.order = append(s.order, handle)
	end.RegisterDequeue(s.handler, func() { s.pump() })
}

// Unregister stops draining the handle and drops it from the rotation.
func (s *RoundRobinScheduler) Unregister(handle uint16) {
	e, ok := s.entries[handle]
	if !ok {
		return
	}
	e.end.UnregisterDequeue()
	e.client.PutAll()
	delete(s.entries, handle)
	for n, h := range s.order {
		if h == handle {
			s.order = append(s.order[:n], s.order[n+1:]...)
			break
		}
	}
	if s.next >= len(s.order) {
		s.next = 0
	}
	s.pump()
}

// SetDisconnect reclaims the handle's outstanding credits immediately
// and stops draining it; queued PDUs are dropped.
func (s *RoundRobinScheduler) SetDisconnect(handle uint16) {
	e, ok := s.entries[handle]
	if !ok {
		return
	}
	e.disconnected = true
	e.pending = nil
	e.client.PutAll()
	for e.end.TryDequeue() != nil {
	}
	s.pump()
}

// Shutdown drops all handles.
func (s *RoundRobinScheduler) Shutdown() {
	for handle := range s.entries {
		s.entries[handle].end.UnregisterDequeue()
		s.entries[handle].client.PutAll()
	}
	s.entries = make(map[uint16]*schedEntry)
	s.order = nil
	s.next = 0
}

func (s *RoundRobinScheduler) onPacketsCompleted(handle uint16, cnt int) {
	e, ok := s.entries[handle]
	if !ok {
		return
	}
	for n := 0; n < cnt; n++ {
		e.client.Put()
	}
	s.pump()
}

// pump moves as many fragments as credits allow. A PDU's fragments are
// finished before the rotation advances, preserving the per-transport
// fragment ordering rule [Vol 3, Part A, 7.2.1].
func (s *RoundRobinScheduler) pump() {
	// resume partially sent PDUs first
	for _, e := range s.entries {
		if !s.sendPending(e) {
			return
		}
	}

	if len(s.order) == 0 {
		return
	}
	for scanned := 0; scanned < len(s.order); {
		if s.next >= len(s.order) {
			s.next = 0
		}
		e := s.entries[s.order[s.next]]
		if e == nil || e.disconnected {
			s.next++
			scanned++
			continue
		}
		pdu := e.end.TryDequeue()
		if pdu == nil {
			s.next++
			scanned++
			continue
		}
		e.pending = s.fragment(e.handle, pdu)
		s.next++
		scanned = 0
		if !s.sendPending(e) {
			return
		}
	}
}

// sendPending pushes a connection's staged fragments while credits
// remain. Returns false when the pool runs dry.
func (s *RoundRobinScheduler) sendPending(e *schedEntry) bool {
	for len(e.pending) > 0 {
		buf := e.client.Get()
		if buf == nil {
			return false
		}
		buf.Write(e.pending[0])
		e.pending = e.pending[1:]
		if !s.hciEnd.Enqueue(buf.Bytes()) {
			logger.Warn("acl tx queue full", "handle", e.handle)
		}
	}
	return true
}

// fragment splits an L2CAP PDU into ACL packets no larger than the
// controller's buffer length.
func (s *RoundRobinScheduler) fragment(handle uint16, pdu []byte) [][]byte {
	var out [][]byte
	pbf := uint8(hci.PbfFirstNonFlushable)
	for len(pdu) > 0 {
		n := len(pdu)
		if n > s.bufSize {
			n = s.bufSize
		}
		out = append(out, hci.BuildAclPacket(handle, pbf, pdu[:n]))
		pdu = pdu[n:]
		pbf = hci.PbfContinuing
	}
	return out
}
