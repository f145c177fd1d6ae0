package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BookingsColName = "bookings"

	BookingStatusPaid = "paid"
)

// JamaahMember is one traveller on a booking, the primary contact included.
// DocumentsUploaded starts false; the document-completion flow flips it later.
type JamaahMember struct {
	Name              string `bson:"name" json:"name"`
	Whatsapp          string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	IsPrimary         bool   `bson:"is_primary" json:"is_primary"`
	DocumentsUploaded bool   `bson:"documents_uploaded" json:"documents_uploaded"`
}

// BookingRecord is written exactly once per successful payment, keyed by the
// order id. This flow only ever writes status "paid".
type BookingRecord struct {
	ID                    string         `bson:"_id" json:"id"`
	UserID                string         `bson:"user_id" json:"user_id"`
	PackageID             string         `bson:"package_id" json:"package_id"`
	PackageName           string         `bson:"package_name" json:"package_name"`
	PackagePrice          int64          `bson:"package_price" json:"package_price"`
	PaxCount              int            `bson:"pax_count" json:"pax_count"`
	TotalAmount           int64          `bson:"total_amount" json:"total_amount"`
	Status                string         `bson:"status" json:"status"`
	PaymentMethod         string         `bson:"payment_method" json:"payment_method"`
	MidtransOrderID       string         `bson:"midtrans_order_id" json:"midtrans_order_id"`
	MidtransTransactionID string         `bson:"midtrans_transaction_id" json:"midtrans_transaction_id"`
	Jamaah                []JamaahMember `bson:"jamaah" json:"jamaah"`
	VoucherCode           *string        `bson:"voucher_code" json:"voucher_code"`
	ReferralCode          *string        `bson:"referral_code" json:"referral_code"`
	CreatedAt             time.Time      `bson:"created_at" json:"created_at"`
	PaidAt                time.Time      `bson:"paid_at" json:"paid_at"`
}

type BookingRepo interface {
	SaveBooking(ctx context.Context, booking *BookingRecord) error
	GetBookingByOrderID(ctx context.Context, orderID string) (*BookingRecord, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*BookingRecord, error)
}

// SaveBooking upserts on the order id, so re-invocation with the same id
// overwrites rather than duplicates.
func (mdb *MongodbRepo) SaveBooking(ctx context.Context, booking *BookingRecord) error {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": booking.ID}
	opts := options.Replace().SetUpsert(true)

	if _, err := col.ReplaceOne(ctx, filter, booking, opts); err != nil {
		return fmt.Errorf("error saving booking %s: %v", booking.ID, err)
	}
	return nil
}

func (mdb *MongodbRepo) GetBookingByOrderID(ctx context.Context, orderID string) (*BookingRecord, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking BookingRecord
	if err := col.FindOne(ctx, bson.M{"_id": orderID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s not found", orderID)
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*BookingRecord, error) {
	col, err := mdb.GetCollection(ctx, DBName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*BookingRecord
	for cursor.Next(ctx) {
		var booking BookingRecord
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}
