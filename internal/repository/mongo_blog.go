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

// MongoBlogRepository implements domain.BlogRepository
type MongoBlogRepository struct {
	collection *mongo.Collection
	team       *mongo.Collection
}

// NewMongoBlogRepository creates a new blog post repository
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{
		collection: db.Collection("blog_posts"),
		team:       db.Collection("team_members"),
	}
}

func (r *MongoBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	objID := primitive.NewObjectID()
	post.ID = objID.Hex()

	doc := bson.M{
		"_id":        objID,
		"title":      post.Title,
		"slug":       post.Slug,
		"excerpt":    post.Excerpt,
		"content":    post.Content,
		"image":      post.Image,
		"category":   post.Category,
		"author_id":  post.AuthorID,
		"status":     post.Status,
		"created_at": post.CreatedAt,
		"updated_at": post.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *MongoBlogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid blog post id", domain.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *MongoBlogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoBlogRepository) List(ctx context.Context, status string) ([]*domain.BlogPost, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*domain.BlogPost
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		posts = append(posts, mapBsonToBlogPost(raw))
	}

	if err := r.attachAuthors(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	objID, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return fmt.Errorf("invalid blog post id: %w", err)
	}

	post.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"title":      post.Title,
			"slug":       post.Slug,
			"excerpt":    post.Excerpt,
			"content":    post.Content,
			"image":      post.Image,
			"category":   post.Category,
			"author_id":  post.AuthorID,
			"status":     post.Status,
			"updated_at": post.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid blog post id: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepository) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}

func (r *MongoBlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.BlogPost, error) {
	var raw bson.M
	if err := r.collection.FindOne(ctx, filter).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	post := mapBsonToBlogPost(raw)
	if err := r.attachAuthors(ctx, []*domain.BlogPost{post}); err != nil {
		return nil, err
	}
	return post, nil
}

// attachAuthors joins the authoring team member onto each post.
func (r *MongoBlogRepository) attachAuthors(ctx context.Context, posts []*domain.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var ids []primitive.ObjectID
	for _, p := range posts {
		if p.AuthorID == "" || seen[p.AuthorID] {
			continue
		}
		seen[p.AuthorID] = true
		objID, err := primitive.ObjectIDFromHex(p.AuthorID)
		if err != nil {
			continue
		}
		ids = append(ids, objID)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := r.team.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("failed to load post authors: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]*domain.TeamMember)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return err
		}
		member := mapBsonToTeamMember(raw)
		byID[member.ID] = member
	}

	for _, p := range posts {
		p.Author = byID[p.AuthorID]
	}
	return nil
}

func mapBsonToBlogPost(raw bson.M) *domain.BlogPost {
	post := &domain.BlogPost{}

	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		post.ID = oid.Hex()
	} else if id, ok := raw["_id"].(string); ok {
		post.ID = id
	}
	if title, ok := raw["title"].(string); ok {
		post.Title = title
	}
	if slug, ok := raw["slug"].(string); ok {
		post.Slug = slug
	}
	if excerpt, ok := raw["excerpt"].(string); ok {
		post.Excerpt = excerpt
	}
	if content, ok := raw["content"].(string); ok {
		post.Content = content
	}
	if image, ok := raw["image"].(string); ok {
		post.Image = image
	}
	if category, ok := raw["category"].(string); ok {
		post.Category = category
	}
	if authorID, ok := raw["author_id"].(string); ok {
		post.AuthorID = authorID
	}
	if status, ok := raw["status"].(string); ok {
		post.Status = status
	}
	if created, ok := raw["created_at"].(primitive.DateTime); ok {
		post.CreatedAt = created.Time()
	}
	if updated, ok := raw["updated_at"].(primitive.DateTime); ok {
		post.UpdatedAt = updated.Time()
	}

	return post
}
