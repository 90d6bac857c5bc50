package constants

// Error codes for external data providers (national registry, media CDN,
// text generation).

const (
	ErrCodeInvalidAPIKey     = "INVALID_API_KEY"
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

var providerErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:     "The API key is invalid or has been revoked",
	ErrCodeNetworkError:      "Unable to reach the external service",
	ErrCodeRateLimited:       "Rate limit exceeded. Please try again later",
	ErrCodeResourceNotFound:  "The requested resource was not found",
	ErrCodeInvalidDataFormat: "The data format is invalid",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := providerErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
