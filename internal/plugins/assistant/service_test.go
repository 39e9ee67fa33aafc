package assistant

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/auditdesk/auditdesk/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(url string) config.AssistantConfig {
	return config.AssistantConfig{
		APIKey:      "test-key",
		APIURL:      url,
		MinInterval: time.Millisecond,
		MaxCalls:    50,
	}
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}},
		})
	}
}

func TestChatReturnsCandidateText(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing key query parameter")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		replyWith("Revenue is trending up.")(w, r)
	}))
	defer srv.Close()

	svc := NewAssistantService(testConfig(srv.URL), testLogger())
	reply := svc.Chat(context.Background(), "How is revenue?")

	if reply != "Revenue is trending up." {
		t.Errorf("unexpected reply: %q", reply)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "User Question: How is revenue?") {
		t.Errorf("prompt missing user question: %q", prompt)
	}
	if !strings.Contains(prompt, "coffee shop") {
		t.Errorf("prompt missing dataset context: %q", prompt)
	}
}

func TestChatWithoutAPIKey(t *testing.T) {
	cfg := testConfig("http://unused.invalid")
	cfg.APIKey = ""

	svc := NewAssistantService(cfg, testLogger())
	if got := svc.Chat(context.Background(), "hello"); got != msgNoAPIKey {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestChatEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	svc := NewAssistantService(testConfig(srv.URL), testLogger())
	if got := svc.Chat(context.Background(), "hello"); got != msgNoResponse {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewAssistantService(testConfig(srv.URL), testLogger())
	reply := svc.Chat(context.Background(), "hello")

	if !strings.HasPrefix(reply, "I encountered an error:") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if !strings.HasSuffix(reply, "Please try again.") {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestChatSessionCap(t *testing.T) {
	srv := httptest.NewServer(replyWith("ok"))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxCalls = 2
	svc := NewAssistantService(cfg, testLogger())

	for i := 0; i < 2; i++ {
		if got := svc.Chat(context.Background(), "hello"); got != "ok" {
			t.Fatalf("call %d: unexpected reply %q", i, got)
		}
	}
	if got := svc.Chat(context.Background(), "hello"); got != msgLimitReached {
		t.Errorf("expected limit message, got %q", got)
	}

	st := svc.Status()
	if st.RequestCount != 2 || st.RemainingCalls != 0 {
		t.Errorf("unexpected status: %+v", st)
	}

	svc.ResetSession()
	if got := svc.Chat(context.Background(), "hello"); got != "ok" {
		t.Errorf("expected reply after reset, got %q", got)
	}
}

func TestChatFailedCallKeepsQuota(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewAssistantService(testConfig(srv.URL), testLogger())
	svc.Chat(context.Background(), "hello")

	if st := svc.Status(); st.RequestCount != 0 {
		t.Errorf("failed call consumed quota: %+v", st)
	}
}

func TestChatEnforcesMinimumInterval(t *testing.T) {
	srv := httptest.NewServer(replyWith("ok"))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MinInterval = 100 * time.Millisecond
	svc := NewAssistantService(cfg, testLogger())

	start := time.Now()
	svc.Chat(context.Background(), "one")
	svc.Chat(context.Background(), "two")
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("second call not delayed: elapsed %v", elapsed)
	}
}

func TestTestKey(t *testing.T) {
	srv := httptest.NewServer(replyWith("API connection successful"))
	defer srv.Close()

	svc := NewAssistantService(testConfig(srv.URL), testLogger())
	ok, msg := svc.TestKey(context.Background())
	if !ok {
		t.Fatalf("expected success, got %q", msg)
	}

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""
	svc = NewAssistantService(cfg, testLogger())
	if ok, _ := svc.TestKey(context.Background()); ok {
		t.Error("expected failure without API key")
	}
}
