package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// RegistryProvider implements a provider for the national vehicle registry
// (Statens vegvesen enkeltoppslag API).
type RegistryProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRegistryProvider creates a new registry provider from the environment
func NewRegistryProvider() *RegistryProvider {
	baseURL := os.Getenv("SVV_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://akfell-datautlevering.atlas.vegvesen.no" // Default
	}
	apiKey := os.Getenv("SVV_API_KEY")

	return &RegistryProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetVehicleData fetches the registry document for a VIN. The caller treats
// any error as "no registry data available"; this method only classifies it.
func (p *RegistryProvider) GetVehicleData(ctx context.Context, vin string) (*dtos.RegistryLookupResponse, int, error) {
	if vin == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "VIN cannot be empty",
		}
	}

	if p.APIKey == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: "SVV_API_KEY environment variable is not set",
		}
	}

	endpoint := "/enkeltoppslag/kjoretoydata?understellsnummer=" + url.QueryEscape(vin)
	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("SVV-Authorization", "Apikey "+p.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, resp.StatusCode, p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	var result dtos.RegistryLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to decode response",
			Err:     err,
		}
	}

	return &result, resp.StatusCode, nil
}

// buildHTTPError creates appropriate error based on status code
func (p *RegistryProvider) buildHTTPError(statusCode int, endpoint string, body string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: fmt.Sprintf("Authentication failed for endpoint %s", endpoint),
			Details: body,
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeResourceNotFound,
			Message: fmt.Sprintf("Resource not found: %s", endpoint),
			Details: body,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d from %s", statusCode, endpoint),
			Details: body,
		}
	}
}
