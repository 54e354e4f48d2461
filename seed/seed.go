package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// DefaultGenres is the fixed genre set written by Genres.
var DefaultGenres = []string{"Fiction", "Non-Fiction", "Science Fiction", "Mystery", "Fantasy"}

type GenreWriter interface {
	DeleteAll(ctx context.Context) (int64, error)
	Insert(ctx context.Context, name string) (bson.ObjectID, error)
}

// Genres clears the genre collection and inserts DefaultGenres one at a time.
// The first failing insert stops the run; genres inserted before it remain.
func Genres(ctx context.Context, w GenreWriter, log *zap.Logger) error {
	deleted, err := w.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear genres: %w", err)
	}
	log.Debug("cleared genres", zap.Int64("deleted", deleted))

	for _, name := range DefaultGenres {
		id, err := w.Insert(ctx, name)
		if err != nil {
			return fmt.Errorf("seed genre %q: %w", name, err)
		}
		log.Debug("inserted genre", zap.String("name", name), zap.String("id", id.Hex()))
	}

	log.Info("genres seeded successfully", zap.Int("count", len(DefaultGenres)))
	return nil
}
