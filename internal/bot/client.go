package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBackendTimeout bounds every call to the question service.
const DefaultBackendTimeout = 5 * time.Second

// Round is the bot-side view of a trivia question: the statements to present
// and the index of the fabricated one.
type Round struct {
	Statements  []string `json:"statements"`
	AnswerIndex int      `json:"answer_index"`
}

type QuestionClient interface {
	Fetch(ctx context.Context) (*Round, error)
}

type httpQuestionClient struct {
	url    string
	client *http.Client
}

func NewQuestionClient(url string, timeout time.Duration) QuestionClient {
	return &httpQuestionClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *httpQuestionClient) Fetch(ctx context.Context) (*Round, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error connecting to backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var payload struct {
		Statements  []string `json:"statements"`
		AnswerIndex *int     `json:"answer_index"`
		Error       string   `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed backend response: %w", err)
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("backend error: %s", payload.Error)
	}
	if len(payload.Statements) == 0 || payload.AnswerIndex == nil ||
		*payload.AnswerIndex < 0 || *payload.AnswerIndex >= len(payload.Statements) {
		return nil, fmt.Errorf("malformed backend response: %+v", payload)
	}

	return &Round{
		Statements:  payload.Statements,
		AnswerIndex: *payload.AnswerIndex,
	}, nil
}
