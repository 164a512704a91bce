package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// BedrockClient is a minimal client for the Bedrock runtime InvokeModel API
type BedrockClient struct {
	apiKey  string
	baseURL string
	modelID string
	client  *http.Client
}

// NewBedrockClient creates a Bedrock client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewBedrockClient(cfg *config.BedrockConfig) *BedrockClient {
	var apiKey, base, modelID string
	region := "us-east-1"

	if cfg != nil {
		apiKey = cfg.APIKey
		modelID = cfg.ModelID
		base = cfg.BaseURL
		if cfg.Region != "" {
			region = cfg.Region
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("AWS_BEDROCK_API_KEY")
	}
	if modelID == "" {
		modelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}
	if base == "" {
		base = fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", region)
	}

	return &BedrockClient{
		apiKey:  apiKey,
		baseURL: base,
		modelID: modelID,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// InvokeRequest is the Anthropic messages payload Bedrock expects
type InvokeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []InvokeMessage `json:"messages"`
}

// InvokeMessage is a single chat message
type InvokeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InvokeResponse is a minimal response shape. Current Claude models return
// a content array; older ones return a bare completion string.
type InvokeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Completion string `json:"completion"`
}

// InvokeModel sends the prompt to the model and returns its text output.
// Server errors are retried with exponential backoff; client errors are not.
func (b *BedrockClient) InvokeModel(ctx context.Context, prompt string) (string, error) {
	reqBody := InvokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        4000,
		Messages:         []InvokeMessage{{Role: "user", Content: prompt}},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/model/%s/invoke", b.baseURL, b.modelID)

	var content string
	invoke := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if b.apiKey != "" {
			req.Header.Set("x-api-key", b.apiKey)
		}

		resp, err := b.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("bedrock returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("bedrock returned status %d", resp.StatusCode))
		}

		var ir InvokeResponse
		if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
			return backoff.Permanent(err)
		}

		switch {
		case len(ir.Content) > 0:
			content = ir.Content[0].Text
		case ir.Completion != "":
			content = ir.Completion
		default:
			return backoff.Permanent(fmt.Errorf("empty response from bedrock"))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(invoke, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}
