package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hrmclient/internal/api"
)

func TestKeyCanonicalization(t *testing.T) {
	a := NewKey(OpLeaveRequests, map[string]string{"status": "Pending", "employee_id": "7"})
	b := NewKey(OpLeaveRequests, map[string]string{"employee_id": "7", "status": "Pending"})
	if a != b {
		t.Fatalf("parameter order must not matter: %q vs %q", a, b)
	}
	if a.Op() != OpLeaveRequests {
		t.Fatalf("unexpected op %q", a.Op())
	}

	bare := NewKey(OpLeaveRequests, nil)
	empty := NewKey(OpLeaveRequests, map[string]string{"status": ""})
	if bare != empty {
		t.Fatal("empty parameter values must be dropped from the key")
	}
	if bare == a {
		t.Fatal("filtered and unfiltered reads must cache independently")
	}
}

func TestGetCachesAndServesFreshHit(t *testing.T) {
	c := New()
	key := NewKey(OpEmployees, nil)
	defer c.Subscribe(key)()

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "v1", nil
	}

	got, err := c.Get(context.Background(), key, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("first get: %v %v", got, err)
	}
	if c.Status(key) != StatusSuccess {
		t.Fatalf("expected success status, got %v", c.Status(key))
	}

	got, err = c.Get(context.Background(), key, fetch)
	if err != nil || got != "v1" {
		t.Fatalf("second get: %v %v", got, err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("fresh hit must not refetch, got %d calls", n)
	}
}

func TestConcurrentGetsCoalesce(t *testing.T) {
	c := New()
	key := NewKey(OpEmployees, nil)
	defer c.Subscribe(key)()

	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(context.Background(), key, fetch)
			if err != nil {
				t.Errorf("get %d: %v", i, err)
			}
			results[i] = v
		}(i)
	}

	// let all three reach the cache before releasing the single fetch
	deadline := time.After(2 * time.Second)
	for c.Status(key) != StatusLoading {
		select {
		case <-deadline:
			t.Fatal("key never entered loading")
		case <-time.After(time.Millisecond):
		}
	}
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly one fetch, got %d", n)
	}
	for i, v := range results {
		if v != "shared" {
			t.Fatalf("result %d = %v", i, v)
		}
	}
}

func TestStaleEntryServedWhileRevalidating(t *testing.T) {
	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	c := New(WithClock(clock), WithStaleness(OpEmployees, 5*time.Minute))
	key := NewKey(OpEmployees, nil)
	defer c.Subscribe(key)()

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return "old", nil
		}
		return "new", nil
	}

	if v, _ := c.Get(context.Background(), key, fetch); v != "old" {
		t.Fatalf("first get = %v", v)
	}

	mu.Lock()
	now = now.Add(6 * time.Minute)
	mu.Unlock()

	// stale hit returns the old value immediately
	if v, _ := c.Get(context.Background(), key, fetch); v != "old" {
		t.Fatalf("stale get must serve cached value, got %v", v)
	}

	// the background revalidation replaces it
	deadline := time.After(2 * time.Second)
	for {
		v, err := c.Get(context.Background(), key, fetch)
		if err != nil {
			t.Fatalf("get during revalidation: %v", err)
		}
		if v == "new" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("revalidated value never landed, still %v", v)
		case <-time.After(time.Millisecond):
		}
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected one revalidation, got %d fetches", n)
	}
}

func TestInvalidationSupersedesInflightFetch(t *testing.T) {
	c := New()
	key := NewKey(OpLeaveRequests, nil)
	defer c.Subscribe(key)()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return "stale-read", nil
		}
		return "post-write", nil
	}

	done := make(chan any, 1)
	go func() {
		v, _ := c.Get(context.Background(), key, fetch)
		done <- v
	}()

	<-started
	c.Invalidate(OpLeaveRequests)
	close(release)

	if v := <-done; v != "post-write" {
		t.Fatalf("superseded read must be discarded and refetched, got %v", v)
	}
	if v, _ := c.Get(context.Background(), key, fetch); v != "post-write" {
		t.Fatalf("cache must hold the post-write value, got %v", v)
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("expected 2 fetches, got %d", n)
	}
}

func TestErrorEntryRefetchesOnNextGet(t *testing.T) {
	c := New()
	key := NewKey(OpGoals, nil)
	defer c.Subscribe(key)()

	boom := errors.New("boom")
	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	if _, err := c.Get(context.Background(), key, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if c.Status(key) != StatusError {
		t.Fatalf("expected error status, got %v", c.Status(key))
	}

	v, err := c.Get(context.Background(), key, fetch)
	if err != nil || v != "recovered" {
		t.Fatalf("retry after error: %v %v", v, err)
	}
	if c.Status(key) != StatusSuccess {
		t.Fatalf("expected success after retry, got %v", c.Status(key))
	}
}

func TestResultWithoutSubscriberNotCached(t *testing.T) {
	c := New()
	key := NewKey(OpPayslips, nil)

	fetch := func(ctx context.Context) (any, error) { return "once", nil }
	if v, err := c.Get(context.Background(), key, fetch); err != nil || v != "once" {
		t.Fatalf("get: %v %v", v, err)
	}
	if c.Status(key) != StatusIdle {
		t.Fatalf("unwatched result must not be cached, status %v", c.Status(key))
	}

	unsubscribe := c.Subscribe(key)
	if _, err := c.Get(context.Background(), key, fetch); err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Status(key) != StatusSuccess {
		t.Fatalf("watched result must be cached, status %v", c.Status(key))
	}
	unsubscribe()
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func TestMutateInvalidatesAndNotifiesOnSuccess(t *testing.T) {
	notifier := &recordingNotifier{}
	c := New(WithNotifier(notifier))
	key := NewKey(OpLeaveRequests, map[string]string{"status": "Pending"})
	balanceKey := NewKey(OpLeaveBalances, map[string]string{"employee_id": "7"})
	defer c.Subscribe(key)()
	defer c.Subscribe(balanceKey)()

	fetchList := func(ctx context.Context) (any, error) { return "list-v1", nil }
	fetchBalance := func(ctx context.Context) (any, error) { return "balance-v1", nil }
	if _, err := c.Get(context.Background(), key, fetchList); err != nil {
		t.Fatalf("seed list: %v", err)
	}
	if _, err := c.Get(context.Background(), balanceKey, fetchBalance); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	err := c.Mutate(context.Background(), MutApproveLeaveRequest, func(ctx context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}

	if c.Status(key) == StatusSuccess || c.Status(balanceKey) == StatusSuccess {
		t.Fatal("approval must invalidate both the request list and balances")
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Leave request approved successfully" {
		t.Fatalf("unexpected success notifications %v", notifier.successes)
	}
	if len(notifier.errors) != 0 {
		t.Fatalf("unexpected error notifications %v", notifier.errors)
	}
}

func TestMutateSurfacesServerMessageOnFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	c := New(WithNotifier(notifier))
	key := NewKey(OpLeaveRequests, nil)
	defer c.Subscribe(key)()

	if _, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "untouched", nil
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	serverErr := &api.Error{Status: 400, Code: "VALIDATION_ERROR", Message: "start_date must not be after end_date"}
	err := c.Mutate(context.Background(), MutCreateLeaveRequest, func(ctx context.Context) error {
		return serverErr
	})
	if !errors.Is(err, serverErr) {
		t.Fatalf("mutate must return the underlying error, got %v", err)
	}

	if c.Status(key) != StatusSuccess {
		t.Fatal("failed mutation must leave cached data untouched")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "start_date must not be after end_date" {
		t.Fatalf("server message must be surfaced verbatim, got %v", notifier.errors)
	}
}

func TestMutateFallsBackToGenericMessage(t *testing.T) {
	notifier := &recordingNotifier{}
	c := New(WithNotifier(notifier))

	err := c.Mutate(context.Background(), MutCreateLeaveRequest, func(ctx context.Context) error {
		return errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != "Failed to submit leave request" {
		t.Fatalf("expected fallback text, got %v", notifier.errors)
	}
}

func TestInvalidationsTableComplete(t *testing.T) {
	for mutation, spec := range Invalidations {
		if spec.SuccessText == "" || spec.FallbackText == "" {
			t.Errorf("%s: missing notification text", mutation)
		}
	}

	approve := Invalidations[MutApproveLeaveRequest]
	var hasBalances bool
	for _, op := range approve.Invalidates {
		if op == OpLeaveBalances {
			hasBalances = true
		}
	}
	if !hasBalances {
		t.Fatal("approving a leave request must also invalidate balances")
	}

	if len(Invalidations[MutChangePassword].Invalidates) != 0 {
		t.Fatal("password change must not touch cached reads")
	}
}

func TestGetAsReturnsTypedValue(t *testing.T) {
	c := New()
	key := NewKey(OpEmployee, map[string]string{"id": "42"})
	defer c.Subscribe(key)()

	type employee struct{ Name string }
	got, err := GetAs(context.Background(), c, key, func(ctx context.Context) ([]employee, error) {
		return []employee{{Name: "Jane"}}, nil
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jane" {
		t.Fatalf("unexpected value %+v", got)
	}
}
