package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const adviceResponse = `{"advice_id":"a-1","status":"success","requirements":{},"assessment":{"total_severity":5,"category":"Higher","indicators":[{"tag":"unlit-walk-risk","severity":2,"note":"n"}],"trade_offs":[]},"message":"m","disclaimer":"d"}`

func writeRequestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	data := `{"target_location":"Nairobi","workplace_location":"Westlands","monthly_budget":30000,"has_all_details":true}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write request: %v", err)
	}
	return path
}

func TestRunUsage(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Makao CLI") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestAdviseSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodPost || r.URL.Path != "/v1/advice" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(adviceResponse))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise", "--addr", server.URL, "--token", "test-token", writeRequestFile(t)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "status=success") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "category=Higher") {
		t.Fatalf("expected category line: %q", stdout.String())
	}
}

func TestAdviseJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(adviceResponse))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise", "--addr", server.URL, "--json", writeRequestFile(t)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"advice_id":"a-1"`) {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
}

func TestAdviseNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid monthly_budget"}`))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise", "--addr", server.URL, writeRequestFile(t)}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "advise failed") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestAdviseInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{invalid"))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise", "--addr", server.URL, writeRequestFile(t)}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid response") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestAdviseMissingFile(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise", "does-not-exist.json"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
}

func TestAdviseMissingArg(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "advise"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
}

func TestRulesDefaults(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "rules"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "rulebook_id: makao-default") {
		t.Fatalf("unexpected stdout: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "night_commute_minutes: 30") {
		t.Fatalf("expected thresholds in output: %q", stdout.String())
	}
}

func TestRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("thresholds:\n  night_commute_minutes: 20\n"), 0o600); err != nil {
		t.Fatalf("write rulebook: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "rules", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "night_commute_minutes: 20") {
		t.Fatalf("expected override in output: %q", stdout.String())
	}
}

func TestRulesMissingFile(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "rules", "does-not-exist.yaml"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"makao", "unknown"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
}

func TestEnvOrDefault(t *testing.T) {
	os.Setenv("MAKAO_TEST_ENV", "value")
	defer os.Unsetenv("MAKAO_TEST_ENV")

	if got := envOrDefault("MAKAO_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}
	if got := envOrDefault("MAKAO_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestMainExitCode(t *testing.T) {
	oldExit := exitFn
	oldArgs := os.Args
	defer func() {
		exitFn = oldExit
		os.Args = oldArgs
	}()

	var code int
	exitFn = func(c int) {
		code = c
	}
	os.Args = []string{"makao"}

	main()

	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}
