package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
)

// MediaProvider fetches labeled vehicle images from the factory media CDN.
// The upstream returns a flat label-to-URL map; labels without a URL are
// dropped before the result reaches the caller.
type MediaProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewMediaProvider() *MediaProvider {
	baseURL := os.Getenv("MEDIA_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://newcars-media.cdn.semler.io"
	}

	return &MediaProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *MediaProvider) GetVehicleImages(ctx context.Context, vin string) (map[string]string, int, error) {
	endpoint := "/images/" + vin
	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

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
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, endpoint),
		}
	}

	var images map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		return nil, resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to decode response",
			Err:     err,
		}
	}

	return images, resp.StatusCode, nil
}
