package store

import (
	"context"
	"errors"
	"fmt"

	"librarycatalog/models"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GenreStore is the accessor for the genres collection.
type GenreStore struct {
	coll *mongo.Collection
}

func NewGenreStore(coll *mongo.Collection) *GenreStore {
	return &GenreStore{coll: coll}
}

// Count returns the number of genres matching filter; a nil filter counts all.
func (s *GenreStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return n, nil
}

// FindIDByName returns the identifier of the first genre named name, or ErrNotFound.
func (s *GenreStore) FindIDByName(ctx context.Context, name string) (bson.ObjectID, error) {
	var genre models.Genre
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := s.coll.FindOne(ctx, bson.M{"name": name}, opts).Decode(&genre)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return bson.ObjectID{}, fmt.Errorf("genre %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("find genre %q: %w", name, err)
	}
	return genre.ID, nil
}

// ListNames returns every genre name. Without sort fields the order is whatever the server returns.
func (s *GenreStore) ListNames(ctx context.Context, sort ...SortField) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	if len(sort) > 0 {
		doc, err := sortDoc(sort)
		if err != nil {
			return nil, err
		}
		opts.SetSort(doc)
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer cursor.Close(ctx)

	var genres []models.Genre
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	return lo.Map(genres, func(g models.Genre, _ int) string { return g.Name }), nil
}

// Insert validates name and stores a new genre, returning its generated identifier.
func (s *GenreStore) Insert(ctx context.Context, name string) (bson.ObjectID, error) {
	genre, err := models.NewGenre(name)
	if err != nil {
		return bson.ObjectID{}, err
	}
	genre.ID = bson.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, genre); err != nil {
		return bson.ObjectID{}, fmt.Errorf("insert genre %q: %w", name, err)
	}
	return genre.ID, nil
}

// DeleteAll removes every genre and reports how many were removed.
func (s *GenreStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete genres: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the ascending name index used by sorted listings.
// The index is not unique.
func (s *GenreStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_1"),
	})
	if err != nil {
		return fmt.Errorf("create genre indexes: %w", err)
	}
	return nil
}
