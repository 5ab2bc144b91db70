package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"air/atlas/internal/constants"
)

// decodeResponse turns a non-2xx reply into a ProviderError and otherwise
// decodes the JSON body into result.
func decodeResponse(resp *http.Response, endpoint string, result interface{}) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    "Failed to read response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return &ProviderError{
			Code:       constants.ErrCodeInvalidDataFormat,
			Message:    fmt.Sprintf("Failed to decode response from %s", endpoint),
			Details:    string(bodyBytes),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return nil
}

// buildHTTPError creates appropriate error based on status code
func buildHTTPError(statusCode int, endpoint string, body string) error {
	pe := &ProviderError{StatusCode: statusCode, Details: body}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		pe.Code = constants.ErrCodeInvalidAPIKey
		pe.Message = fmt.Sprintf("Authentication failed for endpoint %s", endpoint)
	case http.StatusNotFound:
		pe.Code = constants.ErrCodeResourceNotFound
		pe.Message = fmt.Sprintf("Resource not found: %s", endpoint)
	case http.StatusTooManyRequests:
		pe.Code = constants.ErrCodeRateLimited
		pe.Message = constants.GetErrorMessage(constants.ErrCodeRateLimited)
	case http.StatusBadRequest:
		pe.Code = constants.ErrCodeInvalidDataFormat
		pe.Message = fmt.Sprintf("Bad request to %s", endpoint)
	default:
		pe.Code = constants.ErrCodeNetworkError
		pe.Message = fmt.Sprintf("HTTP %d from %s", statusCode, endpoint)
	}

	return pe
}

func networkError(err error) error {
	return &ProviderError{
		Code:    constants.ErrCodeNetworkError,
		Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
		Err:     err,
	}
}
