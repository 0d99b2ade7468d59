package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		message   string
		retryable bool
	}{
		{
			name:      "config missing",
			err:       NewConfigMissingError("GEMINI_API_KEY"),
			code:      ErrCodeConfigMissing,
			message:   "GEMINI_API_KEY is not set",
			retryable: false,
		},
		{
			name:      "unknown action",
			err:       NewUnknownActionError("bogus"),
			code:      ErrCodeUnknownAction,
			message:   "Unknown action",
			retryable: false,
		},
		{
			name:      "invalid payload",
			err:       NewInvalidPayloadError("continueChat", fmt.Errorf("bad shape")),
			code:      ErrCodeInvalidPayload,
			message:   "Invalid payload for action",
			retryable: false,
		},
		{
			name:      "provider call failed",
			err:       NewProviderCallFailedError("gemini", fmt.Errorf("status 502")),
			code:      ErrCodeProviderCallFailed,
			message:   "gemini API call failed",
			retryable: true,
		},
		{
			name:      "provider timeout",
			err:       NewProviderTimeoutError("azure-openai"),
			code:      ErrCodeProviderTimeout,
			message:   "azure-openai API call timed out",
			retryable: true,
		},
		{
			name:      "malformed response",
			err:       NewMalformedResponseError("gemini", fmt.Errorf("not json")),
			code:      ErrCodeMalformedResponse,
			message:   "gemini returned malformed content",
			retryable: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.message, tc.err.Message)
			assert.Equal(t, tc.retryable, tc.err.Retryable)
			assert.False(t, tc.err.Timestamp.IsZero())
			assert.Contains(t, tc.err.Error(), string(tc.code))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewUnknownActionError("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewInvalidPayloadError("x", fmt.Errorf("bad"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewConfigMissingError("KEY")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(NewProviderCallFailedError("gemini", fmt.Errorf("down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("plain error")))
}

func TestHTTPStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", NewUnknownActionError("x"))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "GEMINI_API_KEY is not set", PublicMessage(NewConfigMissingError("GEMINI_API_KEY")))
	assert.Equal(t, "plain error", PublicMessage(fmt.Errorf("plain error")))
	assert.Equal(t, "Server error", PublicMessage(nil))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewProviderCallFailedError("gemini", fmt.Errorf("down"))))
	assert.True(t, IsRetryable(NewProviderTimeoutError("gemini")))
	assert.False(t, IsRetryable(NewConfigMissingError("KEY")))
	assert.False(t, IsRetryable(fmt.Errorf("plain error")))
	assert.False(t, IsRetryable(nil))
}
