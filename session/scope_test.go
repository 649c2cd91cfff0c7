package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func countingProvider(calls *atomic.Int64, sess *Session, err error) Provider {
	return ProviderFunc(func(context.Context, string) (*Session, error) {
		calls.Add(1)
		return sess, err
	})
}

func TestScopeResolvesOnce(t *testing.T) {
	var calls atomic.Int64
	scope := NewScope(countingProvider(&calls, &Session{UserID: "u1"}, nil), "tok")

	for i := 0; i < 5; i++ {
		sess := scope.Get(context.Background())
		if sess == nil || sess.UserID != "u1" {
			t.Fatalf("unexpected session %+v", sess)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one provider call, got %d", got)
	}
}

func TestScopeConcurrentGetsShareOneLookup(t *testing.T) {
	var calls atomic.Int64
	scope := NewScope(countingProvider(&calls, &Session{UserID: "u1"}, nil), "tok")

	var wg sync.WaitGroup
	results := make([]*Session, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = scope.Get(context.Background())
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one provider call, got %d", got)
	}
	for i, sess := range results {
		if sess != results[0] {
			t.Fatalf("goroutine %d saw a different session pointer", i)
		}
	}
}

func TestScopeEmptyCredential(t *testing.T) {
	var calls atomic.Int64
	scope := NewScope(countingProvider(&calls, &Session{UserID: "u1"}, nil), "")

	if sess := scope.Get(context.Background()); sess != nil {
		t.Fatalf("expected nil session for empty credential, got %+v", sess)
	}
	if calls.Load() != 0 {
		t.Fatal("empty credential must not invoke the provider")
	}
}

func TestScopeProviderErrorYieldsNil(t *testing.T) {
	var calls atomic.Int64
	scope := NewScope(countingProvider(&calls, nil, errors.New("boom")), "tok")

	if sess := scope.Get(context.Background()); sess != nil {
		t.Fatalf("expected nil session on provider error, got %+v", sess)
	}

	// the failure is memoized too; no retry storm per request
	_ = scope.Get(context.Background())
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one provider call, got %d", got)
	}
}

func TestNilScope(t *testing.T) {
	var scope *Scope
	if sess := scope.Get(context.Background()); sess != nil {
		t.Fatalf("nil scope must yield nil session, got %+v", sess)
	}
}

func TestStaticScope(t *testing.T) {
	sess := &Session{UserID: "u1"}
	scope := Static(sess)

	if got := scope.Get(context.Background()); got != sess {
		t.Fatalf("expected the static session, got %+v", got)
	}
}
