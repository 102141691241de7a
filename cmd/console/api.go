package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type apiClient struct {
	baseURL  string
	playerID string
	client   *http.Client
}

func (c *apiClient) testConnection() bool {
	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode == http.StatusOK
}

func (c *apiClient) post(op string, body interface{}) (engine.Output, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return engine.Output{}, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	url := fmt.Sprintf("%s/v1/player/%s/%s", c.baseURL, c.playerID, op)
	resp, err := c.client.Post(url, "application/json", &buf)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return engine.Output{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(data, &errorResp); err != nil {
			return engine.Output{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(data))
		}
		return engine.Output{}, fmt.Errorf("%s", errorResp.Error)
	}

	var out engine.Output
	if err := json.Unmarshal(data, &out); err != nil {
		return engine.Output{}, fmt.Errorf("failed to decode output: %w", err)
	}
	return out, nil
}

func (c *apiClient) onboard() (engine.Output, error) {
	return c.post("onboard", nil)
}

func (c *apiClient) completeNaming(name string) (engine.Output, error) {
	return c.post("name", map[string]string{"name": name})
}

func (c *apiClient) reset() (engine.Output, error) {
	return c.post("reset", nil)
}

func (c *apiClient) dispatch(action catalog.ActionID) (engine.Output, error) {
	return c.post("action", map[string]catalog.ActionID{"action": action})
}
