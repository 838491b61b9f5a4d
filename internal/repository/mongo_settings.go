package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mataraung/trip-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSettingsRepository implements domain.SettingsRepository. The
// collection holds at most one document.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new settings repository
func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{
		collection: db.Collection("settings"),
	}
}

func (r *MongoSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var raw bson.M
	if err := r.collection.FindOne(ctx, bson.M{}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return mapBsonToSettings(raw), nil
}

func (r *MongoSettingsRepository) Create(ctx context.Context, settings *domain.Settings) error {
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	objID := primitive.NewObjectID()
	settings.ID = objID.Hex()

	doc := settingsToBson(settings)
	doc["_id"] = objID
	doc["created_at"] = settings.CreatedAt

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

func (r *MongoSettingsRepository) Update(ctx context.Context, settings *domain.Settings) error {
	objID, err := primitive.ObjectIDFromHex(settings.ID)
	if err != nil {
		return fmt.Errorf("invalid settings id: %w", err)
	}

	settings.UpdatedAt = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": settingsToBson(settings)})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func settingsToBson(s *domain.Settings) bson.M {
	return bson.M{
		"company_name":           s.CompanyName,
		"company_email":          s.CompanyEmail,
		"company_phone":          s.CompanyPhone,
		"company_whatsapp":       s.CompanyWhatsapp,
		"company_address":        s.CompanyAddress,
		"company_description":    s.CompanyDescription,
		"email_notifications":    s.EmailNotifications,
		"whatsapp_notifications": s.WhatsappNotifs,
		"blog_notifications":     s.BlogNotifications,
		"maintenance_mode":       s.MaintenanceMode,
		"auto_approve_booking":   s.AutoApproveBooking,
		"max_booking_per_day":    s.MaxBookingPerDay,
		"updated_at":             s.UpdatedAt,
	}
}

func mapBsonToSettings(raw bson.M) *domain.Settings {
	s := &domain.Settings{}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	if v, ok := raw["company_name"].(string); ok {
		s.CompanyName = v
	}
	if v, ok := raw["company_email"].(string); ok {
		s.CompanyEmail = v
	}
	if v, ok := raw["company_phone"].(string); ok {
		s.CompanyPhone = v
	}
	if v, ok := raw["company_whatsapp"].(string); ok {
		s.CompanyWhatsapp = v
	}
	if v, ok := raw["company_address"].(string); ok {
		s.CompanyAddress = v
	}
	if v, ok := raw["company_description"].(string); ok {
		s.CompanyDescription = v
	}
	if v, ok := raw["email_notifications"].(bool); ok {
		s.EmailNotifications = v
	}
	if v, ok := raw["whatsapp_notifications"].(bool); ok {
		s.WhatsappNotifs = v
	}
	if v, ok := raw["blog_notifications"].(bool); ok {
		s.BlogNotifications = v
	}
	if v, ok := raw["maintenance_mode"].(bool); ok {
		s.MaintenanceMode = v
	}
	if v, ok := raw["auto_approve_booking"].(bool); ok {
		s.AutoApproveBooking = v
	}
	if v, ok := raw["max_booking_per_day"].(int32); ok {
		s.MaxBookingPerDay = int(v)
	} else if v, ok := raw["max_booking_per_day"].(int64); ok {
		s.MaxBookingPerDay = int(v)
	}
	if v, ok := raw["created_at"].(primitive.DateTime); ok {
		s.CreatedAt = v.Time()
	}
	if v, ok := raw["updated_at"].(primitive.DateTime); ok {
		s.UpdatedAt = v.Time()
	}

	return s
}
