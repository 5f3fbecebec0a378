package models

type Post struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
	Rating    *int   `json:"rating"`
}

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
	Rating    *int   `json:"rating"`
}

// PUT replaces every mutable field, so the update payload carries the
// same field set as create.
type UpdatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
	Rating    *int   `json:"rating"`
}
