package controller

import (
	"context"
	"time"

	"librarycatalog/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GenreController struct {
	genres  NameLister
	timeout time.Duration
	log     *zap.Logger
}

func NewGenreController(genres NameLister, timeout time.Duration, log *zap.Logger) *GenreController {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GenreController{genres: genres, timeout: timeout, log: log}
}

// GetGenres handles GET /genres: every genre name, sorted by name ascending.
func (h *GenreController) GetGenres(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	listing := store.NewListing(h.genres.ListNames(ctx, store.Asc("name")))
	writeListing(c, h.log, listing, "No genres found", "Error retrieving genres")
}

// GetGenreCount handles GET /genres/count.
func (h *GenreController) GetGenreCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	count, err := h.genres.Count(ctx, nil)
	writeCount(c, h.log, count, err, "Error retrieving genre count")
}
