package main

import (
	"bytes"
	"strings"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DATA_SOURCE", "fixture")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAskPrintsAnswer(t *testing.T) {
	out, _, err := runCmd(t, "ask", "siapa", "jungler", "ONIC?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "JUNGLE tim ONIC adalah Kairi." {
		t.Fatalf("unexpected answer %q", got)
	}
}

func TestAskRequiresMessage(t *testing.T) {
	if _, _, err := runCmd(t, "ask"); err == nil {
		t.Fatalf("expected error without a message")
	}
}

func TestAskFailsOnMissingDataset(t *testing.T) {
	t.Setenv("DATA_SOURCE", "files")
	t.Setenv("DATA_DIR", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"ask", "klasemen"})
	t.Setenv("LOG_LEVEL", "error")

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected dataset error for empty data dir")
	}
}

func TestServeRejectsArgs(t *testing.T) {
	if _, _, err := runCmd(t, "serve", "extra"); err == nil {
		t.Fatalf("expected error for unexpected args")
	}
}
