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

// MongoBookingRepository implements domain.BookingRepository
type MongoBookingRepository struct {
	collection *mongo.Collection
	packages   *mongo.Collection
}

// NewMongoBookingRepository creates a new booking repository
func NewMongoBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{
		collection: db.Collection("bookings"),
		packages:   db.Collection("packages"),
	}
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	objID := primitive.NewObjectID()
	booking.ID = objID.Hex()

	doc := bson.M{
		"_id":           objID,
		"customer_name": booking.CustomerName,
		"whatsapp":      booking.Whatsapp,
		"people":        booking.People,
		"package_id":    booking.PackageID,
		"trip_date":     booking.TripDate,
		"notes":         booking.Notes,
		"total_price":   booking.TotalPrice,
		"status":        booking.Status,
		"created_at":    booking.CreatedAt,
		"updated_at":    booking.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id", domain.ErrNotFound)
	}

	var raw bson.M
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	booking := mapBsonToBooking(raw)
	if err := r.attachPackages(ctx, []*domain.Booking{booking}); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *MongoBookingRepository) List(ctx context.Context, status string) ([]*domain.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	return r.find(ctx, filter, opts)
}

func (r *MongoBookingRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoBookingRepository) ListConfirmedCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	filter := bson.M{
		"status": domain.BookingStatusConfirmed,
		"created_at": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id", domain.ErrNotFound)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id", domain.ErrNotFound)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepository) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *MongoBookingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		bookings = append(bookings, mapBsonToBooking(raw))
	}

	if err := r.attachPackages(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// attachPackages loads the referenced packages in a single $in query and
// joins them onto the bookings.
func (r *MongoBookingRepository) attachPackages(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var ids []primitive.ObjectID
	for _, b := range bookings {
		if b.PackageID == "" || seen[b.PackageID] {
			continue
		}
		seen[b.PackageID] = true
		objID, err := primitive.ObjectIDFromHex(b.PackageID)
		if err != nil {
			continue
		}
		ids = append(ids, objID)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := r.packages.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("failed to load booking packages: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]*domain.TripPackage)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return err
		}
		pkg := mapBsonToPackage(raw)
		byID[pkg.ID] = pkg
	}

	for _, b := range bookings {
		b.Package = byID[b.PackageID]
	}
	return nil
}

func mapBsonToBooking(raw bson.M) *domain.Booking {
	booking := &domain.Booking{}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	} else if id, ok := raw["_id"].(string); ok {
		booking.ID = id
	}
	if name, ok := raw["customer_name"].(string); ok {
		booking.CustomerName = name
	}
	if whatsapp, ok := raw["whatsapp"].(string); ok {
		booking.Whatsapp = whatsapp
	}
	if people, ok := raw["people"].(int32); ok {
		booking.People = int(people)
	} else if people, ok := raw["people"].(int64); ok {
		booking.People = int(people)
	}
	if pkgID, ok := raw["package_id"].(string); ok {
		booking.PackageID = pkgID
	}
	if tripDate, ok := raw["trip_date"].(primitive.DateTime); ok {
		booking.TripDate = tripDate.Time()
	}
	if notes, ok := raw["notes"].(string); ok {
		booking.Notes = notes
	}
	if total, ok := raw["total_price"].(int64); ok {
		booking.TotalPrice = total
	} else if total, ok := raw["total_price"].(int32); ok {
		booking.TotalPrice = int64(total)
	}
	if status, ok := raw["status"].(string); ok {
		booking.Status = status
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		booking.CreatedAt = created.Time()
	}
	if updated, ok := raw["updated_at"].(primitive.DateTime); ok {
		booking.UpdatedAt = updated.Time()
	}

	return booking
}
