// Package mongo persists ideas and categories in two collections keyed by
// the application-generated id field.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MrSnakeDoc/ideas/internal/domain"
)

const (
	IdeasCollection      = "ideas"
	CategoriesCollection = "categories"
)

// Repo implements journal.Repository on MongoDB.
type Repo struct {
	db         *mongo.Database
	ideas      *mongo.Collection
	categories *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{
		db:         db,
		ideas:      db.Collection(IdeasCollection),
		categories: db.Collection(CategoriesCollection),
	}
}

// EnsureIndexes creates the lookup and ordering indexes. It is idempotent.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	ideaIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category_id", Value: 1}},
		},
	}
	if _, err := r.ideas.Indexes().CreateMany(ctx, ideaIndexes); err != nil {
		return fmt.Errorf("create idea indexes: %w", err)
	}

	catIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.categories.Indexes().CreateOne(ctx, catIndex); err != nil {
		return fmt.Errorf("create category indexes: %w", err)
	}
	return nil
}

// SaveIdea upserts an idea by id
func (r *Repo) SaveIdea(ctx context.Context, idea *domain.Idea) error {
	_, err := r.ideas.ReplaceOne(ctx, bson.M{"id": idea.ID}, idea, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert idea %s: %w", idea.ID, err)
	}
	return nil
}

// DeleteIdea removes an idea. Deleting an unknown id is a no-op.
func (r *Repo) DeleteIdea(ctx context.Context, id string) error {
	if _, err := r.ideas.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete idea %s: %w", id, err)
	}
	return nil
}

// SaveCategory upserts a category by id
func (r *Repo) SaveCategory(ctx context.Context, cat *domain.Category) error {
	_, err := r.categories.ReplaceOne(ctx, bson.M{"id": cat.ID}, cat, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert category %s: %w", cat.ID, err)
	}
	return nil
}

// DeleteCategory removes a category without touching the ideas that reference it.
func (r *Repo) DeleteCategory(ctx context.Context, id string) error {
	if _, err := r.categories.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

// LoadAll reads both collections in full.
func (r *Repo) LoadAll(ctx context.Context) ([]*domain.Idea, []*domain.Category, error) {
	ideas := []*domain.Idea{}
	if err := findAll(ctx, r.ideas, &ideas); err != nil {
		return nil, nil, fmt.Errorf("load ideas: %w", err)
	}
	for _, idea := range ideas {
		if idea.Tags == nil {
			idea.Tags = []string{}
		}
	}

	categories := []*domain.Category{}
	if err := findAll(ctx, r.categories, &categories); err != nil {
		return nil, nil, fmt.Errorf("load categories: %w", err)
	}

	return ideas, categories, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// Ping checks the primary is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}
