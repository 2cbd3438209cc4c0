package sui

import (
	"strings"

	clienterrors "github.com/portasui/porta/client/errors"
)

func CheckError(err error) clienterrors.Status {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "insufficientgas") ||
		strings.Contains(msg, "gas balance too low") ||
		strings.Contains(msg, "insufficient sui balance") {
		return clienterrors.NoBalanceForGas
	}
	if strings.Contains(msg, "insufficientcoinbalance") {
		return clienterrors.NoBalance
	}
	if strings.Contains(msg, "moveabort") {
		return clienterrors.TransactionFailure
	}
	if strings.Contains(msg, "notexists") || strings.Contains(msg, "deleted") {
		return clienterrors.ObjectNotFound
	}
	if strings.Contains(msg, "eof") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "429") {
		return clienterrors.NetworkError
	}

	return clienterrors.UnknownError
}
