package routes

import (
	"net/http"

	"postapi/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, postController *controllers.PostController) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "welcome to my server"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	posts := r.Group("/posts")
	{
		posts.GET("", postController.GetPosts)
		// registered before /:id so the literal segment wins
		posts.GET("/latest", postController.GetLatestPost)
		posts.GET("/:id", postController.GetPost)
		posts.POST("", postController.CreatePost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}
