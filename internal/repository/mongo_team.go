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

// MongoTeamRepository implements domain.TeamRepository
type MongoTeamRepository struct {
	collection *mongo.Collection
	posts      *mongo.Collection
}

// NewMongoTeamRepository creates a new team member repository
func NewMongoTeamRepository(db *mongo.Database) *MongoTeamRepository {
	return &MongoTeamRepository{
		collection: db.Collection("team_members"),
		posts:      db.Collection("blog_posts"),
	}
}

func (r *MongoTeamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	objID := primitive.NewObjectID()
	member.ID = objID.Hex()

	doc := bson.M{
		"_id":            objID,
		"name":           member.Name,
		"role":           member.Role,
		"specialization": member.Specialization,
		"experience":     member.Experience,
		"location":       member.Location,
		"image":          member.Image,
		"bio":            member.Bio,
		"achievements":   member.Achievements,
		"rating":         member.Rating,
		"status":         member.Status,
		"created_at":     member.CreatedAt,
		"updated_at":     member.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *MongoTeamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid team member id", domain.ErrNotFound)
	}

	var raw bson.M
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	member := mapBsonToTeamMember(raw)
	if err := r.attachPublishedPosts(ctx, []*domain.TeamMember{member}); err != nil {
		return nil, err
	}
	return member, nil
}

func (r *MongoTeamRepository) List(ctx context.Context, status string) ([]*domain.TeamMember, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []*domain.TeamMember
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		members = append(members, mapBsonToTeamMember(raw))
	}

	if err := r.attachPublishedPosts(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MongoTeamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	objID, err := primitive.ObjectIDFromHex(member.ID)
	if err != nil {
		return fmt.Errorf("invalid team member id: %w", err)
	}

	member.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"name":           member.Name,
			"role":           member.Role,
			"specialization": member.Specialization,
			"experience":     member.Experience,
			"location":       member.Location,
			"image":          member.Image,
			"bio":            member.Bio,
			"achievements":   member.Achievements,
			"rating":         member.Rating,
			"status":         member.Status,
			"updated_at":     member.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoTeamRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid team member id: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoTeamRepository) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}

// attachPublishedPosts joins each member's PUBLISHED posts for the team page
// post attribution.
func (r *MongoTeamRepository) attachPublishedPosts(ctx context.Context, members []*domain.TeamMember) error {
	if len(members) == 0 {
		return nil
	}

	var ids []string
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	filter := bson.M{
		"author_id": bson.M{"$in": ids},
		"status":    domain.BlogStatusPublished,
	}
	cursor, err := r.posts.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load member posts: %w", err)
	}
	defer cursor.Close(ctx)

	byAuthor := make(map[string][]*domain.BlogPost)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return err
		}
		post := mapBsonToBlogPost(raw)
		byAuthor[post.AuthorID] = append(byAuthor[post.AuthorID], post)
	}

	for _, m := range members {
		m.Posts = byAuthor[m.ID]
	}
	return nil
}

func mapBsonToTeamMember(raw bson.M) *domain.TeamMember {
	member := &domain.TeamMember{}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		member.ID = oid.Hex()
	} else if id, ok := raw["_id"].(string); ok {
		member.ID = id
	}
	if name, ok := raw["name"].(string); ok {
		member.Name = name
	}
	if role, ok := raw["role"].(string); ok {
		member.Role = role
	}
	if spec, ok := raw["specialization"].(string); ok {
		member.Specialization = spec
	}
	if exp, ok := raw["experience"].(string); ok {
		member.Experience = exp
	}
	if location, ok := raw["location"].(string); ok {
		member.Location = location
	}
	if image, ok := raw["image"].(string); ok {
		member.Image = image
	}
	if bio, ok := raw["bio"].(string); ok {
		member.Bio = bio
	}
	if achievements, ok := raw["achievements"].(primitive.A); ok {
		for _, a := range achievements {
			if s, ok := a.(string); ok {
				member.Achievements = append(member.Achievements, s)
			}
		}
	}
	if rating, ok := raw["rating"].(float64); ok {
		member.Rating = rating
	} else if rating, ok := raw["rating"].(int32); ok {
		member.Rating = float64(rating)
	} else if rating, ok := raw["rating"].(int64); ok {
		member.Rating = float64(rating)
	}
	if status, ok := raw["status"].(string); ok {
		member.Status = status
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		member.CreatedAt = created.Time()
	}
	if updated, ok := raw["updated_at"].(primitive.DateTime); ok {
		member.UpdatedAt = updated.Time()
	}

	return member
}
