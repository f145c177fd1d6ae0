package models

import "fmt"

// ValidationError blocks submission before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// GatewayError covers token-request and payment failures. The flow stays on
// its current step and nothing is retried automatically.
type GatewayError struct {
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("payment gateway error: %s", e.Detail)
	}
	return fmt.Sprintf("payment gateway error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// RegistrationError means the payment already succeeded but the account could
// not be provisioned. Conflict is set when the email is registered under a
// different password, which sends the user to the "log in manually" result.
type RegistrationError struct {
	Conflict bool
	Message  string
}

func (e *RegistrationError) Error() string {
	if e.Conflict {
		return "email already registered with a different password"
	}
	return e.Message
}

// PersistenceError means money has moved but no booking document exists.
// Reported as "paid but not recorded, contact support", never as a payment
// failure.
type PersistenceError struct {
	OrderID string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("booking %s paid but not recorded: %v", e.OrderID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
