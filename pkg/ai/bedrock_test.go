package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func testClient(baseURL string) *BedrockClient {
	return NewBedrockClient(&config.BedrockConfig{
		APIKey:  "test-key",
		ModelID: "test-model",
		BaseURL: baseURL,
	})
}

func TestInvokeModelSuccess(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotReq InvokeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"content":[{"text":"{\"summary\":\"ok\"}"}]}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	content, err := testClient(srv.URL).InvokeModel(context.Background(), "analyze this")
	if err != nil {
		t.Fatalf("InvokeModel: %v", err)
	}
	if content != `{"summary":"ok"}` {
		t.Errorf("content = %q", content)
	}

	if gotPath != "/model/test-model/invoke" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("x-api-key = %q", gotAPIKey)
	}
	if gotReq.AnthropicVersion != "bedrock-2023-05-31" {
		t.Errorf("anthropic_version = %q", gotReq.AnthropicVersion)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "analyze this" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestInvokeModelLegacyCompletionShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"completion":"legacy text"}`))
	}))
	defer srv.Close()

	content, err := testClient(srv.URL).InvokeModel(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("InvokeModel: %v", err)
	}
	if content != "legacy text" {
		t.Errorf("content = %q", content)
	}
}

func TestInvokeModelClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).InvokeModel(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error for status 400")
	}
	if calls != 1 {
		t.Errorf("client errors must not be retried, got %d calls", calls)
	}
}

func TestInvokeModelEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).InvokeModel(context.Background(), "prompt"); err == nil {
		t.Fatal("expected an error for an empty model response")
	}
}

func TestNewBedrockClientDefaults(t *testing.T) {
	c := NewBedrockClient(&config.BedrockConfig{Region: "eu-west-1"})
	if c.baseURL != "https://bedrock-runtime.eu-west-1.amazonaws.com" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.modelID != "anthropic.claude-3-sonnet-20240229-v1:0" {
		t.Errorf("modelID = %q", c.modelID)
	}
}
