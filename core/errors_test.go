package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteError_StatusMessage(t *testing.T) {
	err := &RemoteError{Op: "search", Status: 503}
	assert.Equal(t, "search: upstream returned status 503", err.Error())
}

func TestRemoteError_CauseMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RemoteError{Op: "detail", Cause: cause}

	assert.Equal(t, "detail: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestRemoteError_As(t *testing.T) {
	var remote *RemoteError
	wrapped := fmt.Errorf("handling event: %w", &RemoteError{Op: "search", Status: 500})

	assert.True(t, errors.As(wrapped, &remote))
	assert.Equal(t, 500, remote.Status)
}

func TestInvalidIndexError_Message(t *testing.T) {
	err := &InvalidIndexError{Index: 7, Count: 3}
	assert.Equal(t, "invalid result index 7 (page has 3 results)", err.Error())
}
