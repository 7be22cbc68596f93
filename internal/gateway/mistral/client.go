package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const completionsPath = "/v1/chat/completions"

// Client calls the Mistral chat-completions API. The zero value is not
// usable; construct it with NewClient. BaseURL is a field so tests can
// point the client at a local httptest server.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single user prompt and returns the generated text.
// Callers inside this package never surface the error; they degrade to
// an empty result instead (see ListStates / ListPlaces).
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completions API returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}

	return parsed.Choices[0].Message.Content, nil
}

// complete wraps Complete with the uniform degrade policy: any failure,
// and any reply carrying the upstream "Error" marker, collapses to
// ok=false. The caller renders that as an empty list, never as an error.
func (c *Client) complete(ctx context.Context, prompt string) (string, bool) {
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		log.Printf("mistral: degrading to empty result: %v", err)
		return "", false
	}
	if containsErrorMarker(text) {
		log.Printf("mistral: degrading to empty result: error marker in reply")
		return "", false
	}
	return text, true
}
