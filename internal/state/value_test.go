package state

import (
	"sync"
	"testing"
)

func TestValue_GetReturnsInitial(t *testing.T) {
	v := NewValue("light")
	if got := v.Get(); got != "light" {
		t.Fatalf("Get() = %q, want %q", got, "light")
	}
}

func TestValue_NotifiesInSubscriptionOrder(t *testing.T) {
	v := NewValue(0)

	var calls []string
	v.Subscribe(func(n int) { calls = append(calls, "a") })
	v.Subscribe(func(n int) { calls = append(calls, "b") })
	v.Subscribe(func(n int) { calls = append(calls, "c") })

	v.Set(1)

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestValue_SubscriberSeesUpdatedValue(t *testing.T) {
	v := NewValue(0)
	var seen int
	v.Subscribe(func(n int) {
		seen = v.Get()
		if n != seen {
			t.Errorf("callback value %d != Get() %d", n, seen)
		}
	})

	v.Set(7)
	if seen != 7 {
		t.Fatalf("seen = %d, want 7", seen)
	}
}

func TestValue_UnsubscribeStopsNotifications(t *testing.T) {
	v := NewValue(0)
	count := 0
	unsubscribe := v.Subscribe(func(int) { count++ })

	v.Set(1)
	unsubscribe()
	unsubscribe() // idempotent
	v.Set(2)

	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if got := v.Subscribers(); got != 0 {
		t.Fatalf("Subscribers() = %d, want 0", got)
	}
}

func TestValue_ReentrantSetIsDeliveredInOrder(t *testing.T) {
	v := NewValue(0)

	var first, second []int
	v.Subscribe(func(n int) {
		first = append(first, n)
		if n == 1 {
			v.Set(2)
		}
	})
	v.Subscribe(func(n int) { second = append(second, n) })

	v.Set(1)

	for name, got := range map[string][]int{"first": first, "second": second} {
		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Fatalf("%s subscriber saw %v, want [1 2]", name, got)
		}
	}
	if v.Get() != 2 {
		t.Fatalf("Get() = %d, want 2", v.Get())
	}
}

func TestValue_NilSubscriberIgnored(t *testing.T) {
	v := NewValue(0)
	unsubscribe := v.Subscribe(nil)
	unsubscribe()
	v.Set(1)
	if got := v.Subscribers(); got != 0 {
		t.Fatalf("Subscribers() = %d, want 0", got)
	}
}

func TestValue_ConcurrentSetAndGet(t *testing.T) {
	v := NewValue(0)
	var mu sync.Mutex
	total := 0
	v.Subscribe(func(int) {
		mu.Lock()
		total++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v.Set(n)
			_ = v.Get()
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if total != 50 {
		t.Fatalf("notifications = %d, want 50", total)
	}
}
