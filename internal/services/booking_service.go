package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alhijaztravel/safarbay/internal/cache"
	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
)

// WelcomeStore stages the read-once welcome banner for the dashboard.
// Implemented by cache.WelcomeFlagStore.
type WelcomeStore interface {
	Set(ctx context.Context, userID string, payload cache.WelcomePayload) error
	Consume(ctx context.Context, userID string) (*cache.WelcomePayload, error)
}

type BookingService struct {
	bookingRepo models.BookingRepo
	flags       WelcomeStore
	logger      *slog.Logger
}

func NewBookingService(bookingRepo models.BookingRepo, flags WelcomeStore, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		flags:       flags,
		logger:      logger,
	}
}

// BuildBookingRecord derives the persisted document from the draft. The
// primary contact leads the jamaah list; every member starts with documents
// not yet uploaded.
func BuildBookingRecord(orderID string, pkg models.TravelPackage, draft *models.BookingDraft, quote Quote, outcome gateway.Outcome, userID string) *models.BookingRecord {
	jamaah := make([]models.JamaahMember, 0, 1+len(draft.Companions))
	jamaah = append(jamaah, models.JamaahMember{
		Name:      draft.PrimaryContact.Name,
		Whatsapp:  draft.PrimaryContact.Phone,
		IsPrimary: true,
	})
	for _, c := range draft.Companions {
		jamaah = append(jamaah, models.JamaahMember{
			Name:     c.Name,
			Whatsapp: c.Whatsapp,
		})
	}

	now := time.Now()
	return &models.BookingRecord{
		ID:                    orderID,
		UserID:                userID,
		PackageID:             pkg.ID,
		PackageName:           pkg.Name,
		PackagePrice:          pkg.Price,
		PaxCount:              draft.Pax,
		TotalAmount:           quote.Total,
		Status:                models.BookingStatusPaid,
		PaymentMethod:         outcome.PaymentType,
		MidtransOrderID:       orderID,
		MidtransTransactionID: outcome.TransactionID,
		Jamaah:                jamaah,
		VoucherCode:           optionalCode(draft.VoucherCode),
		ReferralCode:          optionalCode(draft.ReferralCode),
		CreatedAt:             now,
		PaidAt:                now,
	}
}

// RecordPaidBooking persists the booking and stages the welcome banner for the
// dashboard. Payment has already succeeded when this runs, so a write failure
// surfaces as a PersistenceError, never as a payment failure.
func (bs *BookingService) RecordPaidBooking(ctx context.Context, booking *models.BookingRecord) error {
	if err := bs.bookingRepo.SaveBooking(ctx, booking); err != nil {
		return &models.PersistenceError{OrderID: booking.ID, Err: err}
	}

	payload := cache.WelcomePayload{
		OrderID:     booking.ID,
		PackageName: booking.PackageName,
		Name:        booking.Jamaah[0].Name,
	}
	if err := bs.flags.Set(ctx, booking.UserID, payload); err != nil {
		// The booking itself is durable; the banner handoff is best effort.
		bs.logger.Warn("failed to stage welcome banner", "order_id", booking.ID, "error", err)
	}

	return nil
}

func (bs *BookingService) GetBooking(ctx context.Context, orderID, userID string) (*models.BookingRecord, error) {
	booking, err := bs.bookingRepo.GetBookingByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %s does not belong to this user", orderID)
	}
	return booking, nil
}

func (bs *BookingService) ListBookings(ctx context.Context, userID string) ([]*models.BookingRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return bs.bookingRepo.ListBookingsByUser(ctx, userID)
}

// ConsumeWelcome hands the staged banner payload to the dashboard, once.
func (bs *BookingService) ConsumeWelcome(ctx context.Context, userID string) (*cache.WelcomePayload, error) {
	return bs.flags.Consume(ctx, userID)
}

func optionalCode(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}
