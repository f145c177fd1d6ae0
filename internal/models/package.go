package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const PackagesColName = "packages"

// TravelPackage is an Umrah/Hajj package as managed by the (out of scope)
// admin screens. The checkout flow only reads it.
type TravelPackage struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Price         int64     `bson:"price" json:"price"`
	DurationDays  int       `bson:"duration_days" json:"duration_days"`
	DepartureDate time.Time `bson:"departure_date" json:"departure_date"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type PackageRepo interface {
	GetPackageByID(ctx context.Context, id string) (*TravelPackage, error)
	ListPackages(ctx context.Context) ([]*TravelPackage, error)
}

func (mdb *MongodbRepo) GetPackageByID(ctx context.Context, id string) (*TravelPackage, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var pkg TravelPackage
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package %s not found", id)
		}
		return nil, fmt.Errorf("error finding package: %v", err)
	}
	return &pkg, nil
}

func (mdb *MongodbRepo) ListPackages(ctx context.Context) ([]*TravelPackage, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "departure_date", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding packages: %v", err)
	}
	defer cursor.Close(ctx)

	var packages []*TravelPackage
	for cursor.Next(ctx) {
		var pkg TravelPackage
		if err := cursor.Decode(&pkg); err != nil {
			return nil, fmt.Errorf("error decoding package: %v", err)
		}
		packages = append(packages, &pkg)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return packages, nil
}
