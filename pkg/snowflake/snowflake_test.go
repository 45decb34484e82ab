package snowflake

import (
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	if id := GenID(); id <= 0 {
		t.Fatalf("id = %d, want > 0", id)
	}
}

func TestGenIDUnique(t *testing.T) {
	const n = 10000
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id: %d", id)
		}
		seen[id] = struct{}{}
	}
}

// 同一时间线内生成的 ID 整体递增
func TestGenIDIncreasing(t *testing.T) {
	prev := GenID()
	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestGenIDConcurrent(t *testing.T) {
	const (
		workers = 16
		perWork = 2000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, workers*perWork)
		dup int64
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWork; i++ {
				id := GenID()
				mu.Lock()
				if _, ok := ids[id]; ok {
					dup = id
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if dup != 0 {
		t.Fatalf("duplicate id under concurrency: %d", dup)
	}
	if len(ids) != workers*perWork {
		t.Fatalf("got %d unique ids, want %d", len(ids), workers*perWork)
	}
}
