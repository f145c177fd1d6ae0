package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
)

// CheckoutService drives one checkout attempt through its three steps:
// details -> awaiting_payment -> result. Sessions live in memory; the browser
// drives the flow through the handlers and the payment widget's outcome is
// relayed back through HandleOutcome.
type CheckoutService struct {
	mu       sync.RWMutex
	sessions map[string]*models.CheckoutSession

	packageRepo models.PackageRepo
	tokens      gateway.TokenSource
	identity    *IdentityService
	bookings    *BookingService
	logger      *slog.Logger

	// Overridable in tests; defaults to a timestamp-derived order id.
	newOrderID func() string
}

func NewCheckoutService(packageRepo models.PackageRepo, tokens gateway.TokenSource, identity *IdentityService, bookings *BookingService, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		sessions:    make(map[string]*models.CheckoutSession),
		packageRepo: packageRepo,
		tokens:      tokens,
		identity:    identity,
		bookings:    bookings,
		logger:      logger,
		newOrderID: func() string {
			return fmt.Sprintf("UMRAH-%d", time.Now().UnixMilli())
		},
	}
}

// CheckoutView is the session snapshot returned to the client after every
// operation. Notice carries transient user-facing messages (companion removed,
// payment cancelled) that are not part of the session state.
type CheckoutView struct {
	ID      string                 `json:"id"`
	Step    models.CheckoutStep    `json:"step"`
	Package models.TravelPackage   `json:"package"`
	Draft   models.BookingDraft    `json:"draft"`
	Quote   Quote                  `json:"quote"`
	OrderID string                 `json:"order_id,omitempty"`
	Token   string                 `json:"token,omitempty"`
	Result  *models.CheckoutResult `json:"result,omitempty"`
	Notice  string                 `json:"notice,omitempty"`
}

// StartSession opens a checkout for one travel package with an empty draft.
func (cs *CheckoutService) StartSession(ctx context.Context, packageID string) (*CheckoutView, error) {
	pkg, err := cs.packageRepo.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, fmt.Errorf("package %s is no longer available", packageID)
	}

	session := &models.CheckoutSession{
		ID:        uuid.New().String(),
		Package:   *pkg,
		Draft:     models.NewBookingDraft(),
		Step:      models.StepDetails,
		CreatedAt: time.Now(),
	}

	cs.mu.Lock()
	cs.sessions[session.ID] = session
	cs.mu.Unlock()

	cs.logger.Info("checkout session started", "session_id", session.ID, "package_id", packageID)
	return cs.view(session, ""), nil
}

func (cs *CheckoutService) GetSession(id string) (*CheckoutView, error) {
	session, err := cs.lookup(id)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()
	return cs.view(session, ""), nil
}

// Abandon discards the session. Nothing else is cleaned up: an account
// provisioned by an earlier attempt may exist with no matching booking.
func (cs *CheckoutService) Abandon(id string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.sessions[id]; !ok {
		return fmt.Errorf("checkout session %s not found", id)
	}
	delete(cs.sessions, id)
	return nil
}

func (cs *CheckoutService) UpdateContact(id string, contact models.PrimaryContact) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		draft.PrimaryContact = contact
		return "", nil
	})
}

func (cs *CheckoutService) UpdateCompanion(id string, index int, name, whatsapp string) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		if !draft.SetCompanion(index, name, whatsapp) {
			return "", fmt.Errorf("no companion at index %d", index)
		}
		return "", nil
	})
}

func (cs *CheckoutService) IncrementPax(id string) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		draft.AddCompanion()
		return "", nil
	})
}

func (cs *CheckoutService) DecrementPax(id string) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		before := len(draft.Companions)
		draft.RemoveLastCompanion()
		if len(draft.Companions) < before {
			return "companion removed from the roster", nil
		}
		return "", nil
	})
}

func (cs *CheckoutService) SetPax(id string, pax int) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		draft.SetPax(pax)
		return "", nil
	})
}

func (cs *CheckoutService) RemoveCompanion(id string, index int) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		removed, ok := draft.RemoveCompanionAt(index)
		if !ok {
			return "", fmt.Errorf("no companion at index %d", index)
		}
		name := removed.Name
		if name == "" {
			name = "companion"
		}
		return fmt.Sprintf("%s removed from the roster", name), nil
	})
}

func (cs *CheckoutService) SetCodes(id string, voucher, referral string) (*CheckoutView, error) {
	return cs.editDraft(id, func(draft *models.BookingDraft) (string, error) {
		draft.SetCodes(voucher, referral)
		return "", nil
	})
}

// Submit validates the draft, coins the order id and requests a widget token.
// Validation failure blocks submission before any network call; a gateway
// failure leaves the session on the details step untouched.
func (cs *CheckoutService) Submit(ctx context.Context, id string) (*CheckoutView, error) {
	session, err := cs.lookup(id)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Step != models.StepDetails {
		return nil, fmt.Errorf("checkout already submitted")
	}
	if err := session.Draft.ValidateForSubmit(); err != nil {
		return nil, err
	}

	orderID := cs.newOrderID()
	quote := ComputeQuote(session.Package.Price, session.Draft.Pax, session.Draft.VoucherCode)

	token, err := cs.tokens.CreateToken(ctx, orderID, quote.Total, gateway.CustomerDetails{
		Name:  session.Draft.PrimaryContact.Name,
		Email: session.Draft.PrimaryContact.Email,
		Phone: session.Draft.PrimaryContact.Phone,
	})
	if err != nil {
		var gwErr *models.GatewayError
		if !errors.As(err, &gwErr) {
			err = &models.GatewayError{Err: err}
		}
		return nil, err
	}

	session.OrderID = orderID
	session.Token = token
	session.OutcomeHandled = false

	cs.logger.Info("transaction token issued", "session_id", session.ID, "order_id", orderID, "total", quote.Total)
	return cs.view(session, ""), nil
}

// HandleOutcome processes the widget's single callback for the submitted
// order. A second delivery for the same order is rejected.
func (cs *CheckoutService) HandleOutcome(ctx context.Context, id string, outcome gateway.Outcome) (*CheckoutView, error) {
	session, err := cs.lookup(id)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.OrderID == "" {
		return nil, fmt.Errorf("checkout has not been submitted")
	}
	if session.OutcomeHandled {
		return nil, fmt.Errorf("payment outcome for order %s already processed", session.OrderID)
	}
	session.OutcomeHandled = true

	switch outcome.Kind {
	case gateway.OutcomeSuccess:
		cs.completePayment(ctx, session, outcome)
		return cs.view(session, ""), nil

	case gateway.OutcomePending:
		session.Step = models.StepAwaitingPayment
		cs.logger.Info("payment pending", "session_id", session.ID, "order_id", session.OrderID, "payment_type", outcome.PaymentType)
		return cs.view(session, "complete your payment with the selected method"), nil

	case gateway.OutcomeFailed:
		cs.resetToDetails(session)
		cs.logger.Warn("payment failed", "session_id", session.ID, "message", outcome.Message)
		return cs.view(session, "payment failed, please try again"), nil

	case gateway.OutcomeCancelled:
		cs.resetToDetails(session)
		return cs.view(session, "payment window closed before completing payment"), nil
	}

	return nil, fmt.Errorf("unknown payment outcome %q", outcome.Kind)
}

// Back returns from the waiting screen to the form, draft intact.
func (cs *CheckoutService) Back(id string) (*CheckoutView, error) {
	session, err := cs.lookup(id)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Step != models.StepAwaitingPayment {
		return nil, fmt.Errorf("nothing to go back from")
	}
	cs.resetToDetails(session)
	return cs.view(session, ""), nil
}

// completePayment runs the post-payment sequence: provision the identity, then
// persist the booking. Payment has succeeded, so every failure past this point
// lands on the result step as a degraded success, never as a payment failure.
func (cs *CheckoutService) completePayment(ctx context.Context, session *models.CheckoutSession, outcome gateway.Outcome) {
	session.Step = models.StepResult

	contact := session.Draft.PrimaryContact
	userID, err := cs.identity.Provision(ctx, contact.Email, contact.Password, contact.Name, contact.Phone)
	if err != nil {
		var regErr *models.RegistrationError
		if errors.As(err, &regErr) && regErr.Conflict {
			session.Result = &models.CheckoutResult{
				Variant: models.ResultLoginRequired,
				Message: "payment received; your email is registered with a different password, please log in to link this booking",
			}
			cs.logger.Warn("provisioning conflict", "session_id", session.ID, "order_id", session.OrderID)
			return
		}

		session.Result = &models.CheckoutResult{
			Variant:        models.ResultLinked,
			ManualFollowUp: true,
			Message:        "payment received; our team will finish setting up your account",
		}
		cs.logger.Error("provisioning failed after payment", "session_id", session.ID, "order_id", session.OrderID, "error", err)
		return
	}

	quote := ComputeQuote(session.Package.Price, session.Draft.Pax, session.Draft.VoucherCode)
	booking := BuildBookingRecord(session.OrderID, session.Package, session.Draft, quote, outcome, userID)

	if err := cs.bookings.RecordPaidBooking(ctx, booking); err != nil {
		session.Result = &models.CheckoutResult{
			Variant:     models.ResultLinked,
			UserID:      userID,
			NotRecorded: true,
			Message:     "payment received but the booking could not be recorded, please contact support",
		}
		cs.logger.Error("booking write failed after payment", "session_id", session.ID, "order_id", session.OrderID, "error", err)
		return
	}

	session.Result = &models.CheckoutResult{
		Variant: models.ResultLinked,
		UserID:  userID,
	}
	cs.logger.Info("booking recorded", "session_id", session.ID, "order_id", session.OrderID, "user_id", userID)
}

// resetToDetails drops the in-flight order so the next submit opens a fresh
// payment attempt.
func (cs *CheckoutService) resetToDetails(session *models.CheckoutSession) {
	session.Step = models.StepDetails
	session.OrderID = ""
	session.Token = ""
	session.OutcomeHandled = false
}

func (cs *CheckoutService) lookup(id string) (*models.CheckoutSession, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	session, ok := cs.sessions[id]
	if !ok {
		return nil, fmt.Errorf("checkout session %s not found", id)
	}
	return session, nil
}

// editDraft applies a roster/form mutation on the details step and returns a
// fresh snapshot with the recomputed quote.
func (cs *CheckoutService) editDraft(id string, edit func(*models.BookingDraft) (string, error)) (*CheckoutView, error) {
	session, err := cs.lookup(id)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Step != models.StepDetails {
		return nil, fmt.Errorf("the booking form can no longer be edited")
	}

	notice, err := edit(session.Draft)
	if err != nil {
		return nil, err
	}
	return cs.view(session, notice), nil
}

// view snapshots the session under its lock.
func (cs *CheckoutService) view(session *models.CheckoutSession, notice string) *CheckoutView {
	draft := *session.Draft
	draft.Companions = append([]models.Companion(nil), session.Draft.Companions...)

	return &CheckoutView{
		ID:      session.ID,
		Step:    session.Step,
		Package: session.Package,
		Draft:   draft,
		Quote:   ComputeQuote(session.Package.Price, draft.Pax, draft.VoucherCode),
		OrderID: session.OrderID,
		Token:   session.Token,
		Result:  session.Result,
		Notice:  notice,
	}
}
