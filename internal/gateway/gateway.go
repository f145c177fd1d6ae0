// Package gateway wraps the hosted-payment provider. The widget itself runs in
// the browser; this side issues the transaction token and interprets the
// outcome the browser relays back.
package gateway

import (
	"context"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/alhijaztravel/safarbay/internal/models"
)

type CustomerDetails struct {
	Name  string
	Email string
	Phone string
}

// TokenSource turns an order into an opaque token the hosted payment widget
// accepts. Injected so tests can run without the provider.
type TokenSource interface {
	CreateToken(ctx context.Context, orderID string, grossAmount int64, customer CustomerDetails) (string, error)
}

// SnapTokenSource creates Snap transaction tokens against Midtrans.
type SnapTokenSource struct {
	client *snap.Client
}

func NewSnapTokenSource(client *snap.Client) *SnapTokenSource {
	return &SnapTokenSource{client: client}
}

func (s *SnapTokenSource) CreateToken(ctx context.Context, orderID string, grossAmount int64, customer CustomerDetails) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
	}

	res, err := s.client.CreateTransaction(req)
	if err != nil {
		return "", &models.GatewayError{Detail: err.Message, Err: err.RawError}
	}
	if res.Token == "" {
		return "", &models.GatewayError{Detail: "empty token in gateway response"}
	}
	return res.Token, nil
}

// OutcomeKind mirrors the widget's four callbacks. Exactly one fires per
// payment attempt.
type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "success"
	OutcomePending   OutcomeKind = "pending"
	OutcomeFailed    OutcomeKind = "error"
	OutcomeCancelled OutcomeKind = "close"
)

// Outcome is what the browser reports after the widget hands control back.
type Outcome struct {
	Kind          OutcomeKind
	TransactionID string
	PaymentType   string
	Message       string
}

func ParseOutcomeKind(s string) (OutcomeKind, error) {
	switch OutcomeKind(s) {
	case OutcomeSuccess, OutcomePending, OutcomeFailed, OutcomeCancelled:
		return OutcomeKind(s), nil
	}
	return "", fmt.Errorf("unknown payment outcome %q", s)
}
