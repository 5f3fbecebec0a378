package main

import (
	"log"

	"postapi/config"
	"postapi/controllers"
	"postapi/middleware"
	"postapi/routes"
	"postapi/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "postapi/docs"
)

// @title Posts API
// @version 1.0
// @description A posts CRUD API backed by an in-memory store

// @host localhost:8080
// @BasePath /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Logger())
	r.Use(middleware.ErrorHandler())

	var opts []store.Option
	if cfg.RandomPostIDs {
		opts = append(opts, store.RandomIDs())
	}
	postStore := store.New(opts...)
	if cfg.SeedPosts {
		postStore.Seed()
	}

	postController := controllers.NewPostController(postStore)
	routes.SetupRoutes(r, postController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
