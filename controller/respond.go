package controller

import (
	"context"
	"net/http"
	"time"

	"librarycatalog/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// NameLister is satisfied by the genre and author accessors.
type NameLister interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	ListNames(ctx context.Context, sort ...store.SortField) ([]string, error)
}

const defaultTimeout = 20 * time.Second

// writeListing renders a listing: JSON names when found, emptyMsg as plain
// text when empty, 500 with failMsg when the store failed.
func writeListing(c *gin.Context, log *zap.Logger, listing store.Listing, emptyMsg, failMsg string) {
	switch listing.Status {
	case store.ListingFailed:
		log.Error("error processing request", zap.String("path", c.FullPath()), zap.Error(listing.Err))
		c.String(http.StatusInternalServerError, failMsg)
	case store.ListingEmpty:
		c.String(http.StatusOK, emptyMsg)
	default:
		c.JSON(http.StatusOK, listing.Names)
	}
}

func writeCount(c *gin.Context, log *zap.Logger, count int64, err error, failMsg string) {
	if err != nil {
		log.Error("error processing request", zap.String("path", c.FullPath()), zap.Error(err))
		c.String(http.StatusInternalServerError, failMsg)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
