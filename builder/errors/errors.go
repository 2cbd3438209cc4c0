package errors

import (
	e "errors"
	"fmt"
)

var ErrInvalidAmount = e.New("amount must be greater than zero")
var ErrAmountOverflow = e.New("amount does not fit in a u64")
var ErrMissingSender = e.New("sender address is required")

// The requested route is not one of the supported migration routes.
type UnsupportedRouteError struct {
	Route string
}

func (err *UnsupportedRouteError) Error() string {
	return fmt.Sprintf("unsupported migration route: %q", err.Route)
}

// A protocol has no entry point registered for the asset.
type AssetNotSupportedError struct {
	Asset    string
	Protocol string
}

func (err *AssetNotSupportedError) Error() string {
	return fmt.Sprintf("asset %s is not supported by %s", err.Asset, err.Protocol)
}

// The liquidity protocol has no pool pairing the asset.
type UnsupportedPairError struct {
	Asset    string
	Protocol string
}

func (err *UnsupportedPairError) Error() string {
	return fmt.Sprintf("no %s pool pairs %s", err.Protocol, err.Asset)
}

// The swap router cannot route between the two coin types.
type SwapUnavailableError struct {
	From   string
	To     string
	Reason string
}

func (err *SwapUnavailableError) Error() string {
	if err.Reason != "" {
		return fmt.Sprintf("swap from %s to %s is unavailable: %s", err.From, err.To, err.Reason)
	}
	return fmt.Sprintf("swap from %s to %s is unavailable", err.From, err.To)
}
