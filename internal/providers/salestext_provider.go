package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// SalesTextProvider calls the OpenAI chat completions API for marketing copy.
type SalesTextProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewSalesTextProvider() *SalesTextProvider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &SalesTextProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *SalesTextProvider) CreateChatCompletion(ctx context.Context, request dtos.ChatCompletionRequest) (*dtos.ChatCompletionResponse, int, error) {
	if p.APIKey == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "OPENAI_API_KEY environment variable is not set",
		}
	}

	payloadBytes, err := json.Marshal(request)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/chat/completions", bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Err:     readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d from chat completions", resp.StatusCode),
			Details: string(bodyBytes),
		}
	}

	var result dtos.ChatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Err:     err,
		}
	}

	return &result, resp.StatusCode, nil
}
