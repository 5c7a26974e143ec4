package hci

import (
	"sync/atomic"
	"testing"
)

func TestHandlerRunsTasksInOrder(t *testing.T) {
	h := NewHandler()
	defer h.Close()

	var got []int
	for n := 0; n < 100; n++ {
		n := n
		h.Post(func() { got = append(got, n) })
	}
	h.Sync()

	if len(got) != 100 {
		t.Fatalf("want 100 tasks, got %d", len(got))
	}
	for n, v := range got {
		if v != n {
			t.Fatalf("task %d ran out of order (got %d)", n, v)
		}
	}
}

func TestHandlerCloseDropsLateTasks(t *testing.T) {
	h := NewHandler()

	var ran int32
	h.Post(func() { atomic.AddInt32(&ran, 1) })
	h.Close()
	h.Post(func() { atomic.AddInt32(&ran, 100) })

	if n := atomic.LoadInt32(&ran); n != 1 {
		t.Fatalf("want only the pre-close task, got %d", n)
	}
}

func TestHandlerSyncFlushes(t *testing.T) {
	h := NewHandler()
	defer h.Close()

	var ran int32
	for n := 0; n < 10; n++ {
		h.Post(func() { atomic.AddInt32(&ran, 1) })
	}
	h.Sync()
	if n := atomic.LoadInt32(&ran); n != 10 {
		t.Fatalf("sync returned before tasks ran: %d", n)
	}
}
