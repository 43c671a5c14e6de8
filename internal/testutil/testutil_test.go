package testutil

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, Jakarta())
	if got := FakeClockAt(now).Now(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if !MustParseRFC3339(now.Format(time.RFC3339)).Equal(now) {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestSampleDataset(t *testing.T) {
	ds := SampleDataset()
	if len(ds.Rosters) != 2 || ds.Rosters[0].Team != "ONIC" {
		t.Fatalf("unexpected rosters %+v", ds.Rosters)
	}
	if len(ds.Standings) != 4 || ds.Standings[1].Valid() {
		t.Fatalf("expected an invalid second standings row, got %+v", ds.Standings)
	}
	if got := ds.Schedule.On(SampleDate); len(got) != 2 {
		t.Fatalf("expected 2 fixtures on %s, got %d", SampleDate, len(got))
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	rr2 := PostJSON(handler, "/req", `{"message":"x"}`)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen failure")
	}

	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()

	ds, err := StubDatasetProvider{Dataset: SampleDataset()}.LoadDataset(ctx)
	if err != nil || len(ds.Rosters) == 0 {
		t.Fatalf("expected dataset, got %v %+v", err, ds)
	}
	if _, err := (StubDatasetProvider{Err: errors.New("x")}).LoadDataset(ctx); err == nil {
		t.Fatalf("expected error")
	}

	c := &StubCompleter{Text: "ok"}
	if got, err := c.Complete(ctx, "p", "s", 0.2); err != nil || got != "ok" {
		t.Fatalf("expected ok, got %q %v", got, err)
	}
	if c.Calls() != 1 || c.Prompts()[0] != "p" {
		t.Fatalf("expected one recorded prompt")
	}
}
