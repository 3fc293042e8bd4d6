package mealplan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type (
	// AIClient forwards a chat message to the meal-plan webhook and returns
	// the assistant's reply.
	AIClient interface {
		Ask(sessionID string, message string) (string, error)
	}

	aiClient struct {
		url    string
		key    string
		client *http.Client
	}

	aiRequest struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	aiResponse struct {
		Output string `json:"output"`
	}
)

func NewAIClient(url string, key string) AIClient {
	return &aiClient{
		url: url,
		key: key,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *aiClient) Ask(sessionID string, message string) (string, error) {
	if c.url == "" {
		return "", fmt.Errorf("ai webhook url not configured")
	}

	body, err := json.Marshal(aiRequest{
		SessionID: sessionID,
		Message:   message,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("key", c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai webhook returned status %d", resp.StatusCode)
	}

	var parsed aiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	return parsed.Output, nil
}
