package runloop

import (
	"sync"
	"testing"
	"time"
)

func TestPostRunsInOrder(t *testing.T) {
	loop := New()
	defer loop.Close()

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	for i := 0; i < 100; i++ {
		i := i
		ok := loop.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 99 {
				close(done)
			}
		})
		if !ok {
			t.Fatalf("Post(%d) = false, want true", i)
		}
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tasks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range got {
		if v != i {
			t.Fatalf("task order got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestPostFromManyGoroutines(t *testing.T) {
	loop := New()
	defer loop.Close()

	const n = 50
	var mu sync.Mutex
	count := 0
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Post(func() {
				mu.Lock()
				count++
				if count == n {
					close(done)
				}
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tasks did not run")
	}
}

func TestPostNil(t *testing.T) {
	loop := New()
	defer loop.Close()

	if loop.Post(nil) {
		t.Fatal("Post(nil) = true, want false")
	}
}

func TestCloseRejectsNewTasks(t *testing.T) {
	loop := New()
	loop.Close()

	if loop.Post(func() {}) {
		t.Fatal("Post after Close = true, want false")
	}
}

func TestCloseRunsAcceptedTasks(t *testing.T) {
	loop := New()

	ran := make(chan struct{})
	if !loop.Post(func() { close(ran) }) {
		t.Fatal("Post = false, want true")
	}
	loop.Close()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("accepted task did not run before Close returned")
	}
}

func TestEvery(t *testing.T) {
	loop := New()
	defer loop.Close()

	var mu sync.Mutex
	ticks := 0
	cancel := loop.Every(5*time.Millisecond, func() {
		mu.Lock()
		ticks++
		mu.Unlock()
	})

	time.Sleep(60 * time.Millisecond)
	cancel()

	mu.Lock()
	got := ticks
	mu.Unlock()
	if got == 0 {
		t.Fatal("Every never fired")
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	after := ticks
	mu.Unlock()

	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	final := ticks
	mu.Unlock()
	if final > after+1 {
		t.Fatalf("Every kept firing after cancel: %d then %d", after, final)
	}
}

func TestTaskPanicDoesNotKillLoop(t *testing.T) {
	loop := New()
	defer loop.Close()

	loop.Post(func() { panic("listener bug") })

	ran := make(chan struct{})
	loop.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("loop stopped running tasks after a panic")
	}
}
