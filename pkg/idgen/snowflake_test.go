package idgen

import (
	"strings"
	"sync"
	"testing"
)

func TestNewSnowflake_InvalidWorkerID(t *testing.T) {
	for _, id := range []int64{-1, maxWorkerID + 1} {
		if _, err := NewSnowflake(id); err == nil {
			t.Fatalf("expected error for workerID %d", id)
		}
	}
}

func TestSnowflake_GenerateIncreasing(t *testing.T) {
	s, err := NewSnowflake(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	prev := s.Generate()
	for i := 0; i < 10000; i++ {
		id := s.Generate()
		if id <= prev {
			t.Fatalf("id not increasing: %d after %d", id, prev)
		}
		if (id>>workerIDShift)&maxWorkerID != 3 {
			t.Fatalf("worker id not encoded in %d", id)
		}
		prev = id
	}
}

func TestSnowflake_ConcurrentUnique(t *testing.T) {
	s, _ := NewSnowflake(1)

	const workers, perWorker = 8, 2000
	ids := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- s.Generate()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestSnowflake_NewRequestID(t *testing.T) {
	s, _ := NewSnowflake(1)

	a, b := s.NewRequestID(), s.NewRequestID()
	if !strings.HasPrefix(a, RequestIDPrefix) || len(a) <= len(RequestIDPrefix) {
		t.Fatalf("unexpected request id %q", a)
	}
	if a == b {
		t.Fatalf("request ids must differ: %q", a)
	}
}
