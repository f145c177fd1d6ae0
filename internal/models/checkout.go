package models

import (
	"sync"
	"time"
)

type CheckoutStep string

const (
	StepDetails         CheckoutStep = "details"
	StepAwaitingPayment CheckoutStep = "awaiting_payment"
	StepResult          CheckoutStep = "result"
)

type ResultVariant string

const (
	// ResultLinked sends the user to their dashboard.
	ResultLinked ResultVariant = "linked"
	// ResultLoginRequired is shown when the email exists under a different
	// password: payment succeeded but the booking is not linked to an account.
	ResultLoginRequired ResultVariant = "login_required"
)

// CheckoutResult is the payload of the result step. ManualFollowUp and
// NotRecorded flag degraded success states; payment has succeeded in every
// variant.
type CheckoutResult struct {
	Variant        ResultVariant `json:"variant"`
	UserID         string        `json:"user_id,omitempty"`
	ManualFollowUp bool          `json:"manual_followup"`
	NotRecorded    bool          `json:"not_recorded"`
	Message        string        `json:"message,omitempty"`
}

// CheckoutSession is one checkout attempt. It lives in memory for the
// lifetime of the flow and is discarded on completion or abandon. The mutex
// guards against concurrent HTTP requests on the same session.
type CheckoutSession struct {
	Mu sync.Mutex `json:"-"`

	ID      string        `json:"id"`
	Package TravelPackage `json:"package"`
	Draft   *BookingDraft `json:"draft"`
	Step    CheckoutStep  `json:"step"`

	// Set at submit time; the order id correlates the token request, the
	// gateway callback and the booking write.
	OrderID string `json:"order_id,omitempty"`
	Token   string `json:"token,omitempty"`

	// Exactly one gateway outcome is accepted per submitted order.
	OutcomeHandled bool `json:"-"`

	Result    *CheckoutResult `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
