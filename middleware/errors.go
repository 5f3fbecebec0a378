package middleware

import (
	"errors"
	"log"
	"net/http"

	"postapi/store"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached by handlers into responses.
// Store lookups against a missing id become 404s naming that id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var notFound store.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		case errors.Is(err, store.ErrEmpty):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Unhandled error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
