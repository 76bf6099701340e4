package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Validation failures caught before any network call leaves the client.
var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrTableUnknown     = errors.New("table not in the available set")
	ErrOrderUnknown     = errors.New("order not found")
	ErrOrderNotPending  = errors.New("order is not pending")
	ErrSettlementFields = errors.New("name and phone number required")
	ErrNotConfirmed     = errors.New("checkout not confirmed")
	ErrAccessDenied     = errors.New("access denied")
)

// APIError is a non-2xx answer from the gateway. Conflicts (table taken,
// order already completed) arrive here too and are normal, retryable
// outcomes rather than fatal ones.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("gateway: %s (%d)", e.Message, e.Status)
}

func IsConflict(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusConflict
}

func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}
