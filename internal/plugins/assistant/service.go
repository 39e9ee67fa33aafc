package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/auditdesk/auditdesk/internal/config"
)

// datasetContext is prepended to every user question.
const datasetContext = `
You are an AI assistant for a coffee shop business audit app. You have access to the following transaction dataset:

The dataset contains coffee shop transactions with these columns:
- date: Transaction date (MM/DD/YYYY format)
- datetime: Time of transaction (HH:MM.S format)
- cash_type: Payment method ("cash" or "card")
- card: Card identifier (ANON-0000-0000-XXXX format for card payments, empty for cash)
- money: Transaction amount in currency units
- coffee_name: Name of the coffee/drink purchased

Sample data includes transactions from March 2024 to September 2024, with various coffee types like:
- Latte, Americano, Cappuccino, Hot Chocolate, Cocoa, Cortado, Espresso, Americano with Milk

The dataset contains over 3,600 transactions with varying prices and payment methods.

Your role is to:
1. Answer questions about the coffee shop's business performance
2. Provide insights on sales trends, popular items, payment methods
3. Help with audit-related queries about the business data
4. Give recommendations based on the transaction patterns
5. Calculate metrics like total revenue, average transaction value, etc.

Always base your answers on the dataset context provided. If asked about specific data not in the context, explain what you can analyze from the available information.
`

// Fixed replies. These are conversation messages, not errors; Chat never
// surfaces a failure to the caller in any other form.
const (
	msgLimitReached = "I've reached the maximum number of requests for this session to manage costs. Please try again later or contact support if you need more assistance."
	msgNoResponse   = "I'm sorry, I couldn't generate a response at the moment. Please try again."
	msgNoAPIKey     = "Please add your AI API key in settings to enable AI features."
)

// AssistantService is the chat client. Chat always returns a displayable
// string; transport and decoding failures are folded into the reply text.
type AssistantService interface {
	Chat(ctx context.Context, message string) string
	TestKey(ctx context.Context) (bool, string)
	Status() Status
	ResetSession()
}

type assistantService struct {
	cfg     config.AssistantConfig
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger

	mu    sync.Mutex
	calls int
}

func NewAssistantService(cfg config.AssistantConfig, logger *slog.Logger) AssistantService {
	return &assistantService{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		logger:  logger,
	}
}

// Chat sends message with the dataset context prepended and returns the
// first candidate's text. Consecutive calls are spaced at least the
// configured minimum interval apart; once the per-session cap is hit no
// further network calls are made.
func (s *assistantService) Chat(ctx context.Context, message string) string {
	if s.cfg.APIKey == "" {
		return msgNoAPIKey
	}

	s.mu.Lock()
	capped := s.calls >= s.cfg.MaxCalls
	s.mu.Unlock()
	if capped {
		return msgLimitReached
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return s.errorReply(err)
	}

	prompt := fmt.Sprintf("%s\n\nUser Question: %s\n\nPlease provide a helpful response based on the coffee shop dataset context.", datasetContext, message)

	resp, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("assistant request failed", "error", err)
		return s.errorReply(err)
	}

	// Failed requests do not consume session quota.
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return msgNoResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text
}

// TestKey issues a minimal request to verify the configured key works.
func (s *assistantService) TestKey(ctx context.Context) (bool, string) {
	if s.cfg.APIKey == "" {
		return false, msgNoAPIKey
	}

	resp, err := s.generate(ctx, "Hello, please respond with 'API connection successful' if you can read this message.")
	if err != nil {
		return false, fmt.Sprintf("API key test failed: %v", err)
	}
	if len(resp.Candidates) == 0 {
		return false, "API key test failed - no response received"
	}
	return true, "API key is valid and working correctly!"
}

func (s *assistantService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.cfg.MaxCalls - s.calls
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		Online:         s.cfg.APIKey != "",
		RequestCount:   s.calls,
		RemainingCalls: remaining,
	}
}

// ResetSession clears the per-session call counter.
func (s *assistantService) ResetSession() {
	s.mu.Lock()
	s.calls = 0
	s.mu.Unlock()
}

func (s *assistantService) generate(ctx context.Context, prompt string) (*generateResponse, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", s.cfg.APIURL, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, detail)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}

func (s *assistantService) errorReply(err error) string {
	return fmt.Sprintf("I encountered an error: %v. Please try again.", err)
}
