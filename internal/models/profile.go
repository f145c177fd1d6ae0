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
	ProfilesColName = "profiles"

	// RoleJamaah marks a paying customer provisioned through checkout.
	RoleJamaah = "jamaah"
)

// UserProfile is the profile document keyed by the identity provider's
// account id.
type UserProfile struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile *UserProfile) error
	GetProfileByID(ctx context.Context, id string) (*UserProfile, error)
}

// CreateProfile writes the profile document keyed by the account id. The write
// only fills fields on insert, so an existing profile's role and history are
// never overwritten.
func (mdb *MongodbRepo) CreateProfile(ctx context.Context, profile *UserProfile) error {
	col, err := mdb.GetCollection(ctx, DBName, ProfilesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": profile.ID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"name":       profile.Name,
			"email":      profile.Email,
			"phone":      profile.Phone,
			"role":       profile.Role,
			"created_at": profile.CreatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := col.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error creating profile %s: %v", profile.ID, err)
	}
	return nil
}

func (mdb *MongodbRepo) GetProfileByID(ctx context.Context, id string) (*UserProfile, error) {
	col, err := mdb.GetCollection(ctx, DBName, ProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile UserProfile
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("profile %s not found", id)
		}
		return nil, fmt.Errorf("error finding profile: %v", err)
	}
	return &profile, nil
}
