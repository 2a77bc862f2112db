package gcal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&googleapi.Error{Code: 429}))
	assert.True(t, retryable(&googleapi.Error{Code: 500}))
	assert.True(t, retryable(&googleapi.Error{Code: 503}))
	assert.True(t, retryable(context.DeadlineExceeded))

	assert.False(t, retryable(&googleapi.Error{Code: 403}))
	assert.False(t, retryable(&googleapi.Error{Code: 404}))
	assert.False(t, retryable(errors.New("malformed request")))
}
