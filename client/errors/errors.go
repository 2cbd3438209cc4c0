package errors

import (
	"errors"
	"fmt"
)

// Status classifies a failed RPC call or transaction.
type Status string

const (
	// Not enough of the migrated coin
	NoBalance Status = "NoBalance"
	// Not enough SUI left to pay for gas
	NoBalanceForGas Status = "NoBalanceForGas"
	// Execution aborted on chain, e.g. in a protocol's move call
	TransactionFailure Status = "TransactionFailure"
	// A protocol object referenced by the migration does not exist
	ObjectNotFound Status = "ObjectNotFound"
	// The node could not be reached or rate limited us.  The transaction may be fine.
	NetworkError Status = "NetworkError"
	UnknownError Status = "UnknownError"
)

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

func ObjectNotFoundf(format string, args ...interface{}) error {
	return Errorf(ObjectNotFound, format, args...)
}

func TransactionFailuref(format string, args ...interface{}) error {
	return Errorf(TransactionFailure, format, args...)
}

// StatusOf finds the status anywhere in the error chain, or UnknownError.
func StatusOf(err error) Status {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Status
	}
	return UnknownError
}

// Retryable reports whether submitting the same migration again may succeed.
func Retryable(err error) bool {
	return StatusOf(err) == NetworkError
}
