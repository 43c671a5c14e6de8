package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mpl-id/mpl-chat-service/internal/app/league"
	"github.com/mpl-id/mpl-chat-service/internal/augment"
	"github.com/mpl-id/mpl-chat-service/internal/chat"
	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/store"
	"github.com/mpl-id/mpl-chat-service/internal/testutil"
)

func newTestHandler(t testing.TB, opts ...Option) *Handler {
	t.Helper()
	svc := league.NewService(store.NewMemoryStore(testutil.SampleDataset()))
	engine := chat.NewEngine(svc, augment.NewGateway(nil), chat.WithLocation(testutil.Jakarta()))
	return NewHandler(engine, nil, opts...)
}

func postChat(t *testing.T, h http.Handler, body string) domain.ChatResponse {
	t.Helper()
	rr := testutil.PostJSON(h, "/api/chat", body)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %s", got)
	}
	var resp domain.ChatResponse
	testutil.DecodeJSON(t, rr, &resp)
	return resp
}

func TestChatAnswersTeamRole(t *testing.T) {
	h := newTestHandler(t)

	resp := postChat(t, h, `{"message":"siapa jungler ONIC"}`)

	if resp.Answer != "JUNGLE tim ONIC adalah Kairi." {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}

func TestChatLogsAnswerOnceOnRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := league.NewService(store.NewMemoryStore(testutil.SampleDataset()))
	engine := chat.NewEngine(svc, augment.NewGateway(nil), chat.WithLocation(testutil.Jakarta()))
	h := NewHandler(engine, logger)

	postChat(t, h, `{"message":"klasemen"}`)

	if got := strings.Count(buf.String(), "chat answered"); got != 1 {
		t.Fatalf("expected one answer log line, got %d in %s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "intent=standings") {
		t.Fatalf("expected intent on answer log, got %s", buf.String())
	}
}

func TestChatOutOfScope(t *testing.T) {
	h := newTestHandler(t)

	resp := postChat(t, h, `{"message":"halo apa kabar"}`)

	if resp.Answer != "Maaf, saya hanya melayani pertanyaan seputar MPL Indonesia." {
		t.Fatalf("unexpected answer %q", resp.Answer)
	}
}

func TestChatInvalidBodyIsEmptyMessage(t *testing.T) {
	h := newTestHandler(t)

	for _, body := range []string{``, `not json`, `{}`, `{"message":""}`, `{"message":42}`} {
		resp := postChat(t, h, body)
		if resp.Answer != "Pesan kosong." {
			t.Fatalf("body %q: expected empty message answer, got %q", body, resp.Answer)
		}
	}
}

func TestChatOversizedBodyIsEmptyMessage(t *testing.T) {
	h := newTestHandler(t, WithMaxBodyBytes(16))

	resp := postChat(t, h, `{"message":"`+strings.Repeat("klasemen ", 10)+`"}`)

	if resp.Answer != "Pesan kosong." {
		t.Fatalf("expected oversized body to be treated as empty, got %q", resp.Answer)
	}
}

func TestChatRejectsOtherMethods(t *testing.T) {
	h := newTestHandler(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := testutil.Serve(h, method, "/api/chat", nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("expected Allow: POST, got %q", got)
		}
		var resp map[string]string
		testutil.DecodeJSON(t, rr, &resp)
		if resp["error"] != "Method not allowed" {
			t.Fatalf("unexpected error body %+v", resp)
		}
	}
}

func TestChatLogsIntent(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := league.NewService(store.NewMemoryStore(testutil.SampleDataset()))
	h := NewHandler(chat.NewEngine(svc, nil), logger)

	testutil.PostJSON(h, "/api/chat", `{"message":"klasemen"}`)

	if !strings.Contains(buf.String(), "intent=standings") {
		t.Fatalf("expected intent in log, got %s", buf.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}

	rr = testutil.Serve(h, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	ready := false
	h := newTestHandler(t, WithReadyFunc(func() bool { return ready }))

	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	ready = true
	rr = testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestUnknownPath(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
