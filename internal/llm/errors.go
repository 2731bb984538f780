package llm

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("model server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRequestFailed indicates the provider rejected or failed the request.
	ErrRequestFailed = errors.New("llm request failed")

	// ErrEmptyResponse indicates the provider returned no text.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrMediaUnsupported indicates the provider cannot accept the media type.
	ErrMediaUnsupported = errors.New("media type not supported by provider")

	// ErrMissingAPIKey indicates no credential was configured.
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrUnknownProvider indicates an unrecognised provider name.
	ErrUnknownProvider = errors.New("unknown llm provider")
)

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrMediaUnsupported):
		return "MEDIA_UNSUPPORTED"
	case errors.Is(err, ErrRequestFailed):
		return "REQUEST_FAILED"
	default:
		return "UNKNOWN"
	}
}
