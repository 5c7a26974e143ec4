package hci

import (
	"bytes"
	"testing"
)

func TestQueueEnqueueDequeueOrder(t *testing.T) {
	q := NewQueue(4)

	for n := byte(0); n < 4; n++ {
		if !q.DownEnd().Enqueue([]byte{n}) {
			t.Fatalf("enqueue %d refused", n)
		}
	}
	if q.DownEnd().Enqueue([]byte{0xff}) {
		t.Fatal("enqueue past capacity must be refused")
	}

	for n := byte(0); n < 4; n++ {
		got := q.UpEnd().TryDequeue()
		if !bytes.Equal(got, []byte{n}) {
			t.Fatalf("want %d, got % x", n, got)
		}
	}
	if got := q.UpEnd().TryDequeue(); got != nil {
		t.Fatalf("empty queue returned % x", got)
	}
}

func TestQueueDequeueNotification(t *testing.T) {
	q := NewQueue(4)
	h := NewHandler()
	defer h.Close()

	var got [][]byte
	q.UpEnd().RegisterDequeue(h, func() {
		if p := q.UpEnd().TryDequeue(); p != nil {
			got = append(got, p)
		}
	})

	q.DownEnd().Enqueue([]byte{1})
	q.DownEnd().Enqueue([]byte{2})
	h.Sync()
	h.Sync()

	if len(got) != 2 {
		t.Fatalf("want 2 notifications, got %d", len(got))
	}
	if !bytes.Equal(got[0], []byte{1}) || !bytes.Equal(got[1], []byte{2}) {
		t.Fatalf("wrong order: % x", got)
	}
}

func TestQueueProducerPull(t *testing.T) {
	q := NewQueue(2)
	h := NewHandler()
	defer h.Close()

	pending := [][]byte{{1}, {2}, {3}}
	q.DownEnd().RegisterEnqueue(h, func() []byte {
		if len(pending) == 0 {
			q.DownEnd().UnregisterEnqueue()
			return nil
		}
		p := pending[0]
		pending = pending[1:]
		return p
	})
	h.Sync()
	h.Sync()
	h.Sync()

	// capacity is 2; the third item waits until the consumer makes room
	if got := q.UpEnd().TryDequeue(); !bytes.Equal(got, []byte{1}) {
		t.Fatalf("want 1, got % x", got)
	}
	h.Sync()
	h.Sync()
	if got := q.UpEnd().TryDequeue(); !bytes.Equal(got, []byte{2}) {
		t.Fatalf("want 2, got % x", got)
	}
	h.Sync()
	h.Sync()
	if got := q.UpEnd().TryDequeue(); !bytes.Equal(got, []byte{3}) {
		t.Fatalf("want 3, got % x", got)
	}
}

func TestQueueDirectionsIndependent(t *testing.T) {
	q := NewQueue(2)

	q.UpEnd().Enqueue([]byte{0xaa})   // toward the controller
	q.DownEnd().Enqueue([]byte{0xbb}) // toward the host

	if got := q.DownEnd().TryDequeue(); !bytes.Equal(got, []byte{0xaa}) {
		t.Fatalf("down end: want aa, got % x", got)
	}
	if got := q.UpEnd().TryDequeue(); !bytes.Equal(got, []byte{0xbb}) {
		t.Fatalf("up end: want bb, got % x", got)
	}
}
