package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the quiz service. Each method issues exactly one
// attempt; retry scheduling is the caller's job (see Policy).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("quiz service returned %s", e.Status)
}

// StartSession asks the service for a fresh session and returns its id.
func (c *Client) StartSession(ctx context.Context) (string, error) {
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/session/start", nil, &out); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("start session: empty session id")
	}
	return out.SessionID, nil
}

// NextQuestion fetches the next question for the session, along with
// any pending difficulty-change signal.
func (c *Client) NextQuestion(ctx context.Context, sessionID string) (NextQuestion, error) {
	var out struct {
		Question             Question `json:"question"`
		ShowDifficultyChange string   `json:"show_difficulty_change"`
	}
	path := "/api/quiz/next?session_id=" + url.QueryEscape(sessionID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return NextQuestion{}, fmt.Errorf("next question: %w", err)
	}
	if len(out.Question.Options) == 0 {
		return NextQuestion{}, fmt.Errorf("next question: question %q has no options", out.Question.ID)
	}
	return NextQuestion{
		Question: out.Question,
		Signal:   ParseSignal(out.ShowDifficultyChange),
	}, nil
}

// SubmitAnswer posts a submission and returns its grading.
func (c *Client) SubmitAnswer(ctx context.Context, sub Submission) (Result, error) {
	var out Result
	if err := c.do(ctx, http.MethodPost, "/api/quiz/submit", sub, &out); err != nil {
		return Result{}, fmt.Errorf("submit answer: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
