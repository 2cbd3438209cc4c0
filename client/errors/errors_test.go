package errors_test

import (
	"fmt"
	"testing"

	clienterrors "github.com/portasui/porta/client/errors"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	err := clienterrors.Errorf(clienterrors.NetworkError, "dial %s: eof", "localhost")
	require.Equal(t, "NetworkError: dial localhost: eof", err.Error())
	require.Equal(t, clienterrors.NetworkError, clienterrors.StatusOf(err))
	require.True(t, clienterrors.Retryable(err))

	wrapped := fmt.Errorf("estimate: %w", clienterrors.ObjectNotFoundf("0x6"))
	require.Equal(t, clienterrors.ObjectNotFound, clienterrors.StatusOf(wrapped))
	require.False(t, clienterrors.Retryable(wrapped))

	require.Equal(t, clienterrors.UnknownError, clienterrors.StatusOf(fmt.Errorf("plain")))
	require.Equal(t, clienterrors.TransactionFailure, clienterrors.StatusOf(clienterrors.TransactionFailuref("aborted")))
}
