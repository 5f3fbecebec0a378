package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"postapi/models"
	"postapi/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PostController struct {
	store *store.PostStore
}

func NewPostController(s *store.PostStore) *PostController {
	return &PostController{store: s}
}

func (pc *PostController) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": pc.store.List()})
}

func (pc *PostController) GetLatestPost(c *gin.Context) {
	post, err := pc.store.Latest()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (pc *PostController) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.store.Get(uint(id))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationMessage(err)})
		return
	}

	post := pc.store.Create(&req)
	c.JSON(http.StatusCreated, gin.H{"data": post})
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationMessage(err)})
		return
	}

	post, err := pc.store.Update(uint(id), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"data": post})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := pc.store.Delete(uint(id)); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// validationMessage turns binding failures into per-field messages; anything
// that is not a validator error (malformed JSON, wrong types) passes through
// as-is.
func validationMessage(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}
