package goCertify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
	"github.com/MrEthical07/goCertify/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

// stubBackend fakes the backend API and counts every request by
// "METHOD path" so tests can assert exactly how many round-trips an
// operation produced.
type stubBackend struct {
	mu      sync.Mutex
	counts  map[string]int
	respond map[string]http.HandlerFunc
	server  *httptest.Server
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	sb := &stubBackend{
		counts:  make(map[string]int),
		respond: make(map[string]http.HandlerFunc),
	}
	sb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		sb.mu.Lock()
		sb.counts[key]++
		fn := sb.respond[key]
		sb.mu.Unlock()

		if fn == nil {
			writeTestEnvelope(w, http.StatusNotFound, "Not Found", nil)
			return
		}
		fn(w, r)
	}))
	t.Cleanup(sb.server.Close)

	return sb
}

func (sb *stubBackend) handle(method, path string, fn http.HandlerFunc) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.respond[method+" "+path] = fn
}

func (sb *stubBackend) handleOK(method, path string, data any) {
	sb.handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeTestEnvelope(w, http.StatusOK, "OK", data)
	})
}

func (sb *stubBackend) calls(method, path string) int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.counts[method+" "+path]
}

func writeTestEnvelope(w http.ResponseWriter, status int, message any, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status >= 200 && status < 300,
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func newTestEngine(t *testing.T, baseURL string) (*Engine, *cache.MemoryStore) {
	t.Helper()

	cfg := defaultConfig()
	cfg.Backend.BaseURL = baseURL

	store := cache.NewMemoryStore()
	return &Engine{
		config:   cfg,
		store:    store,
		gateway:  gateway.NewClient(baseURL, 2*time.Second),
		metrics:  NewMetrics(cfg.Metrics),
		validate: newValidator(),
	}, store
}

// recordingStore wraps a MemoryStore and records every invalidated tag,
// so tests can assert a mutation touches exactly its documented tag set.
type recordingStore struct {
	*cache.MemoryStore
	mu          sync.Mutex
	invalidated []string
}

func (s *recordingStore) Invalidate(ctx context.Context, tags ...cache.Tag) error {
	s.mu.Lock()
	for _, tag := range tags {
		s.invalidated = append(s.invalidated, tag.String())
	}
	s.mu.Unlock()
	return s.MemoryStore.Invalidate(ctx, tags...)
}

func (s *recordingStore) invalidatedTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.invalidated...)
}

func recordInvalidations(engine *Engine) *recordingStore {
	rec := &recordingStore{MemoryStore: cache.NewMemoryStore()}
	engine.store = rec
	return rec
}

func authedCtx(token string) context.Context {
	sess := &session.Session{
		UserID: "user-" + token,
		Email:  token + "@example.com",
		Role:   session.RoleUser,
		Token:  token,
	}
	return WithSessionScope(context.Background(), session.Static(sess))
}

func anonCtx() context.Context {
	return WithSessionScope(context.Background(), session.NewScope(nil, ""))
}

func validCreateEventInput() CreateEventInput {
	return CreateEventInput{
		EventName:           "National Seminar",
		Description:         "Annual national seminar on informatics",
		ActivityAt:          "2026-09-01",
		PrefixCode:          "SMN/VII/",
		SuffixCode:          100,
		Organizer:           "HIMTI",
		EventTheme:          "Technology",
		EventTemplate:       TemplateDefault,
		StakeholderName:     "Jane Chair",
		StakeholderPosition: "Committee Chair",
	}
}
