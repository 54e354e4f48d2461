package routes

import (
	"librarycatalog/controller"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Genres  *controller.GenreController
	Authors *controller.AuthorController
	Health  *controller.HealthController
}

// Register mounts every catalog route on router.
func Register(router *gin.Engine, c Controllers) {
	genres := router.Group("/genres")
	genres.GET("", c.Genres.GetGenres)
	genres.GET("/count", c.Genres.GetGenreCount)

	authors := router.Group("/authors")
	authors.GET("", c.Authors.GetAuthors)
	authors.GET("/count", c.Authors.GetAuthorCount)

	router.GET("/healthz", c.Health.Health)
}
