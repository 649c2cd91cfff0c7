package goCertify

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestParticipantsCachedUnderCoarseTag(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodGet, "/events/evt-1/participants", []map[string]any{
		{"uid": "p-1", "name": "Alice", "email": "alice@example.com"},
	})
	sb.handleOK(http.MethodGet, "/events/evt-2/participants", []map[string]any{})
	sb.handleOK(http.MethodPost, "/events/evt-1/participants/add", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-a")

	participants, err := engine.Participants(ctx, "evt-1")
	if err != nil {
		t.Fatalf("Participants failed: %v", err)
	}
	if len(participants) != 1 || participants[0].Name != "Alice" {
		t.Fatalf("unexpected participants: %+v", participants)
	}

	if _, err := engine.Participants(ctx, "evt-1"); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if got := sb.calls(http.MethodGet, "/events/evt-1/participants"); got != 1 {
		t.Fatalf("expected cached second read, got %d backend calls", got)
	}

	// prime a second event's list, then mutate the first: the coarse tag
	// drops both
	if _, err := engine.Participants(ctx, "evt-2"); err != nil {
		t.Fatalf("evt-2 read failed: %v", err)
	}

	res := engine.AddParticipants(ctx, "evt-1", []ParticipantInput{
		{Name: "Bob", Email: "bob@example.com", Position: "Member"},
	})
	if !res.Success {
		t.Fatalf("AddParticipants failed: %+v", res)
	}

	if _, err := engine.Participants(ctx, "evt-2"); err != nil {
		t.Fatalf("evt-2 reread failed: %v", err)
	}
	if got := sb.calls(http.MethodGet, "/events/evt-2/participants"); got != 2 {
		t.Fatalf("coarse tag should drop every participant list, got %d fetches", got)
	}
}

func TestAddParticipantsValidation(t *testing.T) {
	sb := newStubBackend(t)
	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-a")

	if res := engine.AddParticipants(ctx, "evt-1", nil); res.Success || res.Message != "No participants provided." {
		t.Fatalf("unexpected result for empty batch: %+v", res)
	}

	res := engine.AddParticipants(ctx, "evt-1", []ParticipantInput{
		{Name: "Bob", Email: "not-an-email", Position: "Member"},
	})
	if res.Success || res.Message != "Invalid participant data." {
		t.Fatalf("unexpected result for bad email: %+v", res)
	}

	if got := sb.calls(http.MethodPost, "/events/evt-1/participants/add"); got != 0 {
		t.Fatalf("invalid batches must not reach the backend, got %d calls", got)
	}
}

func TestAddParticipantsByExcelRequiresFile(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodPost, "/events/evt-1/participants/add-excel", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-a")

	if res := engine.AddParticipantsByExcel(ctx, "evt-1", "list.xlsx", nil); res.Success || res.Message != "No file provided." {
		t.Fatalf("unexpected result for nil file: %+v", res)
	}

	res := engine.AddParticipantsByExcel(ctx, "evt-1", "list.xlsx", strings.NewReader("fake-sheet"))
	if !res.Success {
		t.Fatalf("AddParticipantsByExcel failed: %+v", res)
	}
	if got := sb.calls(http.MethodPost, "/events/evt-1/participants/add-excel"); got != 1 {
		t.Fatalf("expected one upload, got %d", got)
	}
}

func TestUpdateAndDeleteParticipantInvalidate(t *testing.T) {
	sb := newStubBackend(t)
	sb.handleOK(http.MethodGet, "/events/evt-1/participants", []map[string]any{})
	sb.handleOK(http.MethodPatch, "/events/evt-1/participants/p-1/update", nil)
	sb.handleOK(http.MethodDelete, "/events/evt-1/participants/p-1/delete", nil)
	sb.handleOK(http.MethodDelete, "/events/evt-1/participants/delete", nil)

	engine, _ := newTestEngine(t, sb.server.URL)
	ctx := authedCtx("tok-a")

	steps := []func() MutationResult{
		func() MutationResult {
			return engine.UpdateParticipant(ctx, "evt-1", "p-1", ParticipantInput{
				Name: "Alice", Email: "alice@example.com", Position: "Member",
			})
		},
		func() MutationResult { return engine.DeleteParticipant(ctx, "evt-1", "p-1") },
		func() MutationResult { return engine.DeleteAllParticipants(ctx, "evt-1") },
	}

	fetches := 0
	for i, step := range steps {
		if _, err := engine.Participants(ctx, "evt-1"); err != nil {
			t.Fatalf("step %d: prime read failed: %v", i, err)
		}
		fetches++

		if res := step(); !res.Success {
			t.Fatalf("step %d: mutation failed: %+v", i, res)
		}

		if _, err := engine.Participants(ctx, "evt-1"); err != nil {
			t.Fatalf("step %d: reread failed: %v", i, err)
		}
		fetches++

		if got := sb.calls(http.MethodGet, "/events/evt-1/participants"); got != fetches {
			t.Fatalf("step %d: expected %d fetches, got %d", i, fetches, got)
		}
	}
}

func TestCertificateParticipantIsPublicAndUncached(t *testing.T) {
	sb := newStubBackend(t)
	sb.handle(http.MethodGet, "/events/evt-1/participants/p-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("public certificate read must not carry a token")
		}
		writeTestEnvelope(w, http.StatusOK, "OK", map[string]any{
			"participant": map[string]any{"uid": "p-1", "name": "Alice"},
			"event":       map[string]any{"uid": "evt-1", "eventName": "Seminar"},
		})
	})

	engine, _ := newTestEngine(t, sb.server.URL)

	for i := 0; i < 2; i++ {
		cert, err := engine.CertificateParticipant(context.Background(), "evt-1", "p-1")
		if err != nil {
			t.Fatalf("CertificateParticipant failed: %v", err)
		}
		if cert.Participant.Name != "Alice" || cert.Event.UID != "evt-1" {
			t.Fatalf("unexpected certificate: %+v", cert)
		}
	}

	if got := sb.calls(http.MethodGet, "/events/evt-1/participants/p-1"); got != 2 {
		t.Fatalf("public read must bypass the cache, got %d backend calls", got)
	}
}

func TestCertificateParticipantRequiresUIDs(t *testing.T) {
	sb := newStubBackend(t)
	engine, _ := newTestEngine(t, sb.server.URL)

	if _, err := engine.CertificateParticipant(context.Background(), "", "p-1"); err != ErrEventUIDRequired {
		t.Fatalf("expected ErrEventUIDRequired, got %v", err)
	}
	if _, err := engine.CertificateParticipant(context.Background(), "evt-1", ""); err != ErrParticipantUIDRequired {
		t.Fatalf("expected ErrParticipantUIDRequired, got %v", err)
	}
}
