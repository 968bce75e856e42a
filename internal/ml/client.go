package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"swasthprameh/internal/config"
)

// MLClient forwards onboarding-derived features to the external prediction
// endpoint. The response is treated as an opaque JSON blob merged into the
// plan context.
type MLClient interface {
	Predict(ctx context.Context, features map[string]interface{}) (json.RawMessage, error)
	HealthCheck(ctx context.Context) error
}

type httpMLClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPMLClient creates a diagnosis-service client for {ML_SERVER_URL}/predict.
func NewHTTPMLClient(cfg *config.Config) (MLClient, error) {
	if cfg.MLServerURL == "" {
		return nil, fmt.Errorf("ML_SERVER_URL is not configured")
	}

	return &httpMLClient{
		baseURL:    strings.TrimRight(cfg.MLServerURL, "/"),
		httpClient: &http.Client{Timeout: cfg.DiagnosisTimeout},
	}, nil
}

// Predict posts the feature values as JSON and returns the raw prediction
// payload without interpreting it.
func (c *httpMLClient) Predict(ctx context.Context, features map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("diagnosis service call failed: %w", err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode diagnosis response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(raw, &detail)
		if detail.Detail != "" {
			return nil, fmt.Errorf("diagnosis service error: %s", detail.Detail)
		}
		return nil, fmt.Errorf("diagnosis service returned status %d", resp.StatusCode)
	}

	return raw, nil
}

func (c *httpMLClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("diagnosis service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
