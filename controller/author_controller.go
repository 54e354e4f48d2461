package controller

import (
	"context"
	"time"

	"librarycatalog/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthorController struct {
	authors NameLister
	timeout time.Duration
	log     *zap.Logger
}

func NewAuthorController(authors NameLister, timeout time.Duration, log *zap.Logger) *AuthorController {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AuthorController{authors: authors, timeout: timeout, log: log}
}

// GetAuthors handles GET /authors, sorted by family name.
func (h *AuthorController) GetAuthors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	listing := store.NewListing(h.authors.ListNames(ctx, store.Asc("family_name")))
	writeListing(c, h.log, listing, "No authors found", "Error retrieving authors")
}

func (h *AuthorController) GetAuthorCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	count, err := h.authors.Count(ctx, nil)
	writeCount(c, h.log, count, err, "Error retrieving author count")
}
