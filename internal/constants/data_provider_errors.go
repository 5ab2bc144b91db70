package constants

// Provider Error Codes
// These constants define specific error scenarios for the flight-tracking and airport-directory providers

// Credential-related errors
const (
	ErrCodeInvalidAPIKey = "INVALID_API_KEY"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeNetworkError  = "NETWORK_ERROR"
)

// Response-related errors
const (
	ErrCodeResourceNotFound      = "RESOURCE_NOT_FOUND"
	ErrCodeInvalidDataFormat     = "INVALID_DATA_FORMAT"
	ErrCodeProviderErrorResponse = "PROVIDER_ERROR_RESPONSE"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:         "The provider credentials are invalid or have been revoked",
	ErrCodeRateLimited:           "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:          "Unable to reach the provider. Please check your internet connection",
	ErrCodeResourceNotFound:      "The requested resource was not found at the provider",
	ErrCodeInvalidDataFormat:     "The data format is invalid",
	ErrCodeProviderErrorResponse: "The provider reported an error for this request",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
