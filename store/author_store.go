package store

import (
	"context"
	"fmt"

	"librarycatalog/models"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AuthorStore struct {
	coll *mongo.Collection
}

func NewAuthorStore(coll *mongo.Collection) *AuthorStore {
	return &AuthorStore{coll: coll}
}

func (s *AuthorStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return n, nil
}

// ListNames returns author display names ("family, first").
func (s *AuthorStore) ListNames(ctx context.Context, sort ...SortField) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "first_name", Value: 1},
		{Key: "family_name", Value: 1},
	})
	if len(sort) > 0 {
		doc, err := sortDoc(sort)
		if err != nil {
			return nil, err
		}
		opts.SetSort(doc)
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cursor.Close(ctx)

	var authors []models.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return lo.Map(authors, func(a models.Author, _ int) string { return a.Name() }), nil
}

func (s *AuthorStore) Insert(ctx context.Context, author models.Author) (bson.ObjectID, error) {
	if err := models.Validate(author); err != nil {
		return bson.ObjectID{}, err
	}
	author.ID = bson.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, author); err != nil {
		return bson.ObjectID{}, fmt.Errorf("insert author %q: %w", author.Name(), err)
	}
	return author.ID, nil
}

func (s *AuthorStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "family_name", Value: 1}},
		Options: options.Index().SetName("family_name_1"),
	})
	if err != nil {
		return fmt.Errorf("create author indexes: %w", err)
	}
	return nil
}
