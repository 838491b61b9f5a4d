package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPackageRepository implements domain.PackageRepository
type MongoPackageRepository struct {
	collection *mongo.Collection
	bookings   *mongo.Collection
}

// NewMongoPackageRepository creates a new trip package repository
func NewMongoPackageRepository(db *mongo.Database) *MongoPackageRepository {
	return &MongoPackageRepository{
		collection: db.Collection("packages"),
		bookings:   db.Collection("bookings"),
	}
}

func (r *MongoPackageRepository) Create(ctx context.Context, pkg *domain.TripPackage) error {
	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	objID := primitive.NewObjectID()
	pkg.ID = objID.Hex()

	doc := bson.M{
		"_id":         objID,
		"name":        pkg.Name,
		"description": pkg.Description,
		"image":       pkg.Image,
		"location":    pkg.Location,
		"price":       pkg.Price,
		"duration":    pkg.Duration,
		"max_people":  pkg.MaxPeople,
		"status":      pkg.Status,
		"created_at":  pkg.CreatedAt,
		"updated_at":  pkg.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoPackageRepository) GetByID(ctx context.Context, id string) (*domain.TripPackage, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package id", domain.ErrNotFound)
	}

	var raw bson.M
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return mapBsonToPackage(raw), nil
}

func (r *MongoPackageRepository) List(ctx context.Context, status string) ([]*domain.TripPackage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []*domain.TripPackage
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		packages = append(packages, mapBsonToPackage(raw))
	}
	return packages, nil
}

// ListWithConfirmedBookings returns every package with its CONFIRMED bookings
// attached, for the dashboard ranking. Mongo has no server-side join here, so
// the bookings are fetched in one query and grouped by package id.
func (r *MongoPackageRepository) ListWithConfirmedBookings(ctx context.Context) ([]*domain.TripPackage, error) {
	packages, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}

	cursor, err := r.bookings.Find(ctx, bson.M{"status": domain.BookingStatusConfirmed})
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	byPackage := make(map[string][]*domain.Booking)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		b := mapBsonToBooking(raw)
		byPackage[b.PackageID] = append(byPackage[b.PackageID], b)
	}

	for _, pkg := range packages {
		pkg.Bookings = byPackage[pkg.ID]
	}
	return packages, nil
}

func (r *MongoPackageRepository) Update(ctx context.Context, pkg *domain.TripPackage) error {
	objID, err := primitive.ObjectIDFromHex(pkg.ID)
	if err != nil {
		return fmt.Errorf("invalid package id: %w", err)
	}

	pkg.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":        pkg.Name,
			"description": pkg.Description,
			"image":       pkg.Image,
			"location":    pkg.Location,
			"price":       pkg.Price,
			"duration":    pkg.Duration,
			"max_people":  pkg.MaxPeople,
			"status":      pkg.Status,
			"updated_at":  pkg.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoPackageRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid package id: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoPackageRepository) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

func mapBsonToPackage(raw bson.M) *domain.TripPackage {
	pkg := &domain.TripPackage{}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		pkg.ID = oid.Hex()
	} else if id, ok := raw["_id"].(string); ok {
		pkg.ID = id
	}
	if name, ok := raw["name"].(string); ok {
		pkg.Name = name
	}
	if desc, ok := raw["description"].(string); ok {
		pkg.Description = desc
	}
	if image, ok := raw["image"].(string); ok {
		pkg.Image = image
	}
	if location, ok := raw["location"].(string); ok {
		pkg.Location = location
	}
	if price, ok := raw["price"].(int64); ok {
		pkg.Price = price
	} else if price, ok := raw["price"].(int32); ok {
		pkg.Price = int64(price)
	}
	if duration, ok := raw["duration"].(string); ok {
		pkg.Duration = duration
	}
	if maxPeople, ok := raw["max_people"].(int32); ok {
		pkg.MaxPeople = int(maxPeople)
	} else if maxPeople, ok := raw["max_people"].(int64); ok {
		pkg.MaxPeople = int(maxPeople)
	}
	if status, ok := raw["status"].(string); ok {
		pkg.Status = status
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		pkg.CreatedAt = created.Time()
	}
	if updated, ok := raw["updated_at"].(primitive.DateTime); ok {
		pkg.UpdatedAt = updated.Time()
	}

	return pkg
}
